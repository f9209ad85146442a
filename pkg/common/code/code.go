package code

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a business error carried from core/repo layers up to the web
// envelope. Comparable by numeric code, so a wrapped copy still matches
// its template via errors.Is.
type Code struct {
	HTTPStatus int    `json:"-"`
	Code       int    `json:"code"`
	Msg        string `json:"msg"`
	cause      error
}

func New(httpStatus, code int, msg string) *Code {
	return &Code{HTTPStatus: httpStatus, Code: code, Msg: msg}
}

func (c *Code) Error() string {
	if c.cause != nil {
		return fmt.Sprintf("[%d] %s: %v", c.Code, c.Msg, c.cause)
	}
	return fmt.Sprintf("[%d] %s", c.Code, c.Msg)
}

func (c *Code) Unwrap() error { return c.cause }

func (c *Code) Is(target error) bool {
	t := &Code{}
	if !errors.As(target, &t) {
		return false
	}
	return c.Code == t.Code
}

// WithErr returns a copy carrying err as cause.
func (c *Code) WithErr(err error) *Code {
	nc := *c
	nc.cause = err
	return &nc
}

// WithMsg returns a copy with the message replaced.
func (c *Code) WithMsg(msg string) *Code {
	nc := *c
	nc.Msg = msg
	return &nc
}

func (c *Code) WithMsgf(format string, args ...any) *Code {
	return c.WithMsg(fmt.Sprintf(format, args...))
}

var (
	Success     = New(http.StatusOK, 0, "success")
	UnDefineErr = New(http.StatusInternalServerError, 10000, "undefined error")
	ParamErr    = New(http.StatusBadRequest, 10001, "invalid parameter")

	RPCHttpErr     = New(http.StatusBadGateway, 10100, "upstream request failed")
	RPCHttpCodeErr = New(http.StatusBadGateway, 10101, "upstream returned unexpected status")

	// solution / salt domain
	SolutionNotAqueous  = New(http.StatusUnprocessableEntity, 20000, "H2O is not the most prominent component")
	SolutionEmptyErr    = New(http.StatusBadRequest, 20001, "solution has no components")
	UnknownSpeciesErr   = New(http.StatusBadRequest, 20002, "unknown species in solution")
	UnknownUnitErr      = New(http.StatusBadRequest, 20003, "unsupported amount unit")
	IonChargeZeroErr    = New(http.StatusBadRequest, 20004, "ion carries no formal charge")
	CompoundNotFoundErr = New(http.StatusNotFound, 20005, "compound not found")

	RecordCreateErr = New(http.StatusInternalServerError, 20100, "create identification record failed")
	RecordQueryErr  = New(http.StatusInternalServerError, 20101, "query identification records failed")
)
