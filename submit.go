package formkit

import (
	"net/http"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Submit marks every control as touched, validates the form and, when it is
// valid, returns the payload built by FormatPayload.
func (s *Service) Submit(f form.Form, formatList []Field) (map[string]any, error) {
	if missing(f) {
		return nil, nil
	}
	s.MarkAllTouched(f)
	if err := Validate(f); err != nil {
		s.logger.Debug("submission rejected",
			logger.Operation("submit"),
			logger.FormID(f.ID()),
			logger.Error(err),
		)
		return nil, err
	}
	return s.FormatPayload(f, formatList)
}

// PatchFromRequest reads the request body with binder.Values and patches the
// form through PatchFormValues.
func (s *Service) PatchFromRequest(f form.Form, r *http.Request, mappedKeys ...Field) error {
	data, err := binder.Values(r)
	if err != nil {
		return err
	}
	s.PatchFormValues(f, data, mappedKeys...)
	return nil
}
