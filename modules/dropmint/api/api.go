package api

import (
	"github.com/dropforge/drop-engine/common"
	"github.com/dropforge/drop-engine/modules/dropmint/api/httphandler"
	"github.com/dropforge/drop-engine/modules/dropmint/engine"
)

func NewHTTPHandler(network common.Network, engine *engine.Engine) *httphandler.HttpHandler {
	return httphandler.New(network, engine)
}
