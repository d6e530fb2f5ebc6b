package grpc

// proto.go defines the gRPC server interface derived from
// givebridge/crm/v1/pledge.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/givebridge/givebridge/api/gen/go/givebridge/crm/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PledgeServiceServer is the server API for PledgeService.
// It mirrors the proto-generated interface from givebridge.crm.v1.PledgeService.
type PledgeServiceServer interface {
	AssignSolicitor(context.Context, *AssignSolicitorRequest) (*BonusResponse, error)
	RecalculateBonus(context.Context, *RecalculateBonusRequest) (*BonusResponse, error)
	GetPayment(context.Context, *GetPaymentRequest) (*BonusResponse, error)
	DeletePayment(context.Context, *DeletePaymentRequest) (*DeletePaymentResponse, error)
	CreatePaymentPlan(context.Context, *CreatePaymentPlanRequest) (*PaymentPlanResponse, error)
	GetPaymentPlan(context.Context, *GetPaymentPlanRequest) (*PaymentPlanResponse, error)
	PausePaymentPlan(context.Context, *PlanStatusRequest) (*PaymentPlanResponse, error)
	ResumePaymentPlan(context.Context, *PlanStatusRequest) (*PaymentPlanResponse, error)
	CancelPaymentPlan(context.Context, *PlanStatusRequest) (*PaymentPlanResponse, error)
	mustEmbedUnimplementedPledgeServiceServer()
}

// UnimplementedPledgeServiceServer provides forward-compatible default implementations.
type UnimplementedPledgeServiceServer struct{}

func (UnimplementedPledgeServiceServer) AssignSolicitor(context.Context, *AssignSolicitorRequest) (*BonusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssignSolicitor not implemented")
}
func (UnimplementedPledgeServiceServer) RecalculateBonus(context.Context, *RecalculateBonusRequest) (*BonusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecalculateBonus not implemented")
}
func (UnimplementedPledgeServiceServer) GetPayment(context.Context, *GetPaymentRequest) (*BonusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPayment not implemented")
}
func (UnimplementedPledgeServiceServer) DeletePayment(context.Context, *DeletePaymentRequest) (*DeletePaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeletePayment not implemented")
}
func (UnimplementedPledgeServiceServer) CreatePaymentPlan(context.Context, *CreatePaymentPlanRequest) (*PaymentPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePaymentPlan not implemented")
}
func (UnimplementedPledgeServiceServer) GetPaymentPlan(context.Context, *GetPaymentPlanRequest) (*PaymentPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPaymentPlan not implemented")
}
func (UnimplementedPledgeServiceServer) PausePaymentPlan(context.Context, *PlanStatusRequest) (*PaymentPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PausePaymentPlan not implemented")
}
func (UnimplementedPledgeServiceServer) ResumePaymentPlan(context.Context, *PlanStatusRequest) (*PaymentPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumePaymentPlan not implemented")
}
func (UnimplementedPledgeServiceServer) CancelPaymentPlan(context.Context, *PlanStatusRequest) (*PaymentPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelPaymentPlan not implemented")
}
func (UnimplementedPledgeServiceServer) mustEmbedUnimplementedPledgeServiceServer() {}

// RegisterPledgeServiceServer registers the PledgeServiceServer with the gRPC server.
func RegisterPledgeServiceServer(s *grpclib.Server, srv PledgeServiceServer) {
	s.RegisterService(&_PledgeService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _PledgeService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "givebridge.crm.v1.PledgeService",
	HandlerType: (*PledgeServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AssignSolicitor", Handler: _PledgeService_AssignSolicitor_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "RecalculateBonus", Handler: _PledgeService_RecalculateBonus_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "GetPayment", Handler: _PledgeService_GetPayment_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "DeletePayment", Handler: _PledgeService_DeletePayment_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "CreatePaymentPlan", Handler: _PledgeService_CreatePaymentPlan_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetPaymentPlan", Handler: _PledgeService_GetPaymentPlan_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "PausePaymentPlan", Handler: _PledgeService_PausePaymentPlan_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "ResumePaymentPlan", Handler: _PledgeService_ResumePaymentPlan_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "CancelPaymentPlan", Handler: _PledgeService_CancelPaymentPlan_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _PledgeService_AssignSolicitor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignSolicitorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PledgeServiceServer).AssignSolicitor(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/givebridge.crm.v1.PledgeService/AssignSolicitor",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PledgeServiceServer).AssignSolicitor(ctx, req.(*AssignSolicitorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PledgeService_RecalculateBonus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecalculateBonusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PledgeServiceServer).RecalculateBonus(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/givebridge.crm.v1.PledgeService/RecalculateBonus",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PledgeServiceServer).RecalculateBonus(ctx, req.(*RecalculateBonusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PledgeService_GetPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PledgeServiceServer).GetPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/givebridge.crm.v1.PledgeService/GetPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PledgeServiceServer).GetPayment(ctx, req.(*GetPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PledgeService_DeletePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeletePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PledgeServiceServer).DeletePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/givebridge.crm.v1.PledgeService/DeletePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PledgeServiceServer).DeletePayment(ctx, req.(*DeletePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PledgeService_CreatePaymentPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePaymentPlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PledgeServiceServer).CreatePaymentPlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/givebridge.crm.v1.PledgeService/CreatePaymentPlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PledgeServiceServer).CreatePaymentPlan(ctx, req.(*CreatePaymentPlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PledgeService_GetPaymentPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPaymentPlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PledgeServiceServer).GetPaymentPlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/givebridge.crm.v1.PledgeService/GetPaymentPlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PledgeServiceServer).GetPaymentPlan(ctx, req.(*GetPaymentPlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PledgeService_PausePaymentPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlanStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PledgeServiceServer).PausePaymentPlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/givebridge.crm.v1.PledgeService/PausePaymentPlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PledgeServiceServer).PausePaymentPlan(ctx, req.(*PlanStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PledgeService_ResumePaymentPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlanStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PledgeServiceServer).ResumePaymentPlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/givebridge.crm.v1.PledgeService/ResumePaymentPlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PledgeServiceServer).ResumePaymentPlan(ctx, req.(*PlanStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PledgeService_CancelPaymentPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlanStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PledgeServiceServer).CancelPaymentPlan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/givebridge.crm.v1.PledgeService/CancelPaymentPlan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PledgeServiceServer).CancelPaymentPlan(ctx, req.(*PlanStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}
