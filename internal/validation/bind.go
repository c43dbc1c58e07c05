package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator shared by all routes.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// BindAndValidate binds the JSON body into `out` and runs validation.
// Wrong-type fields fail the bind; missing or empty required fields fail
// validation. Either way it writes a 400 with errMsg and returns an error for
// the handler to short-circuit. Validation runs before any side effect, so a
// 400 never reaches a store or the generation provider.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate, errMsg string) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return err
	}
	return nil
}
