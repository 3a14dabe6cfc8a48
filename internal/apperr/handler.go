package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// GlobalErrorHandler converts every error escaping a handler into a structured
// JSON body. Nothing leaks to the transport layer as an empty-body failure.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorBody{Error: ve.Message})
			return
		}

		var nf *NotFoundError
		if errors.As(err, &nf) {
			_ = c.JSON(http.StatusNotFound, errorBody{Error: nf.Message})
			return
		}

		var ue *UpstreamError
		if errors.As(err, &ue) {
			slog.Error("Upstream failure", "error", err)
			_ = c.JSON(http.StatusInternalServerError, errorBody{Error: ue.Message})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, errorBody{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
