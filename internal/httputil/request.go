package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the request body to the struct passed in the interface.
//
// It does not write a response, the caller decides how the returned
// error is presented.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(&data)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
