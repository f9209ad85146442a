package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	common "github.com/aquachem/ionmatch/pkg/common"
)

func TestPageReqNormalize(t *testing.T) {
	p := &common.PageReq{}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)

	p = &common.PageReq{Page: 4, PageSize: 10000}
	p.Normalize()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 200, p.PageSize)
}

func TestPageReqOffset(t *testing.T) {
	p := &common.PageReq{Page: 1, PageSize: 20}
	assert.Equal(t, 0, p.Offset())

	p = &common.PageReq{Page: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())
}
