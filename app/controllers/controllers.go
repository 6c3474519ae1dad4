// Package controllers adapts HTTP requests to service calls and service
// results to the API's wire format.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vinayak/pkg/bind"
)

// decodeJSON reads a size-capped JSON body into dest and runs tag
// validation. Callers translate any failure into their route's 400 body;
// field-level rules beyond the tags stay in the services.
func decodeJSON(r *http.Request, dest interface{}) error {
	errs, err := bind.JSON(r, dest)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return errors.New("controllers: request validation failed")
	}
	return nil
}
