package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Validator is implemented by request DTOs. Validate returns one message per
// failed field; nil means the request is acceptable.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest, rejecting unknown
// fields, then runs dest's Validate when it has one. Failures of either kind
// get a 400 with all messages joined into a single bad_request error, and
// the handler should return immediately on false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}
