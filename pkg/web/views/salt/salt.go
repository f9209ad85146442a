package salt

import (
	"github.com/gin-gonic/gin"

	common "github.com/aquachem/ionmatch/pkg/common"
	"github.com/aquachem/ionmatch/pkg/common/code"
	coreSalt "github.com/aquachem/ionmatch/pkg/core/salt"
	saltImpl "github.com/aquachem/ionmatch/pkg/core/salt/salt"
)

type Handle struct{ svc coreSalt.Service }

func NewHandle() *Handle { return &Handle{svc: saltImpl.New()} }

func (h *Handle) Identify(ctx *gin.Context) {
	in := &coreSalt.IdentifyReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Identify(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) IdentifyBatch(ctx *gin.Context) {
	in := &coreSalt.IdentifyBatchReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	// the batch fans out to pool goroutines; hand them a detached copy
	resp, err := h.svc.IdentifyBatch(ctx.Copy(), in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Build(ctx *gin.Context) {
	in := &coreSalt.BuildReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Build(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) History(ctx *gin.Context) {
	in := &coreSalt.HistoryReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.History(ctx, in)
	common.Reply(ctx, err, resp)
}
