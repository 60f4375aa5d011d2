package formkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/form"
)

// newProfileForm builds the name/email/age form most tests start from.
func newProfileForm(t *testing.T) *form.Group {
	t.Helper()
	g := form.New(form.WithID("profile"))
	for _, name := range []string{"name", "email", "age"} {
		require.True(t, g.AddControl(name, form.NewControl("")))
	}
	return g
}

func control(t *testing.T, f form.Form, name string) *form.Control {
	t.Helper()
	c, ok := f.Get(name)
	require.True(t, ok, "control %q not found", name)
	return c
}

func newService() *formkit.Service {
	return formkit.New()
}
