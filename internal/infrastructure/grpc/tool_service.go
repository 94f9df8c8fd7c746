package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/narwhalmedia/greenroom/internal/tools"
	"github.com/narwhalmedia/greenroom/pkg/errors"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
)

// ToolService serves the tool registry over gRPC.
type ToolService struct {
	registry *tools.Registry
	logger   interfaces.Logger
}

// NewToolService creates a new tool service
func NewToolService(registry *tools.Registry, logger interfaces.Logger) *ToolService {
	return &ToolService{
		registry: registry,
		logger:   logger,
	}
}

// ListTools returns the registered tools
func (s *ToolService) ListTools(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list := make([]any, 0)
	for _, t := range s.registry.List() {
		list = append(list, map[string]any{
			"name":        t.Name,
			"description": t.Description,
		})
	}

	out, err := structpb.NewStruct(map[string]any{"tools": list})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// Invoke runs one tool call
func (s *ToolService) Invoke(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name := req.GetFields()["name"].GetStringValue()
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	var args tools.Args
	if v, ok := req.GetFields()["arguments"]; ok {
		switch v.GetKind().(type) {
		case *structpb.Value_StructValue:
			args = v.GetStructValue().AsMap()
		case *structpb.Value_NullValue:
		default:
			return nil, status.Error(codes.InvalidArgument, "arguments must be an object")
		}
	}

	result, err := s.registry.Invoke(ctx, name, args)
	if err != nil {
		return nil, toStatus(err)
	}

	value, err := structpb.NewValue(result)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding %s result: %v", name, err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{"result": value}}, nil
}

// toStatus maps application error kinds onto gRPC codes.
func toStatus(err error) error {
	switch errors.TypeOf(err) {
	case errors.ErrorTypeInvalidArgument:
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.ErrorTypeNotFound:
		return status.Error(codes.NotFound, err.Error())
	case errors.ErrorTypeUpstreamConnection:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
