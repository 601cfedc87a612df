package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	protoclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	protoserver "github.com/viant/mcp-protocol/server"

	"github.com/doclens/doclens/service"
)

// Handler exposes doclens search and extraction as MCP tools so a host agent
// can drive the pipeline and run the semantic stage on the surfaced prompts.
type Handler struct {
	*protoserver.DefaultHandler
	service *service.Service
	ops     protoclient.Operations
}

func NewHandler(svc *service.Service) protoserver.NewHandler {
	return func(_ context.Context, notifier transport.Notifier, logger logger.Logger, clientOperation protoclient.Operations) (protoserver.Handler, error) {
		base := protoserver.NewDefaultHandler(notifier, logger, clientOperation)
		h := &Handler{
			DefaultHandler: base,
			service:        svc,
			ops:            clientOperation,
		}
		if err := registerTools(base.Registry, h); err != nil {
			return nil, err
		}
		return h, nil
	}
}
