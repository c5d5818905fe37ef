package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// PanicError carries a recovered panic to the HTTP error handler, which
// answers SYSTEM_001 and logs the stack.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// PanicRecovery converts a handler panic into a *PanicError.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}
				err = &PanicError{Value: r, Stack: debug.Stack()}
			}()

			return next(c)
		}
	}
}
