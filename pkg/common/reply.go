package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aquachem/ionmatch/pkg/common/code"
)

type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Reply writes the uniform response envelope. err wins over data; a nil
// err replies success with the optional first data element.
func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}

	resp := &Resp{Code: code.Success.Code, Msg: code.Success.Msg}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	ctx.JSON(http.StatusOK, resp)
}

func ReplyErr(ctx *gin.Context, err error) {
	c := &code.Code{}
	if !errors.As(err, &c) {
		c = code.UnDefineErr.WithErr(err)
	}
	ctx.JSON(c.HTTPStatus, &Resp{Code: c.Code, Msg: c.Msg})
}
