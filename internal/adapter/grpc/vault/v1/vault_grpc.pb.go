// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: vault/v1/vault.proto

package vaultv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	VaultService_Deposit_FullMethodName            = "/vault.v1.VaultService/Deposit"
	VaultService_Withdraw_FullMethodName           = "/vault.v1.VaultService/Withdraw"
	VaultService_GetVaultStatus_FullMethodName     = "/vault.v1.VaultService/GetVaultStatus"
	VaultService_StartOperation_FullMethodName     = "/vault.v1.VaultService/StartOperation"
	VaultService_FinishCheckin_FullMethodName      = "/vault.v1.VaultService/FinishCheckin"
	VaultService_RevalueAsset_FullMethodName       = "/vault.v1.VaultService/RevalueAsset"
	VaultService_FinishReconcile_FullMethodName    = "/vault.v1.VaultService/FinishReconcile"
	VaultService_ForceAbandon_FullMethodName       = "/vault.v1.VaultService/ForceAbandon"
	VaultService_RegisterFeed_FullMethodName       = "/vault.v1.VaultService/RegisterFeed"
	VaultService_RefreshPrice_FullMethodName       = "/vault.v1.VaultService/RefreshPrice"
	VaultService_GetPrice_FullMethodName           = "/vault.v1.VaultService/GetPrice"
	VaultService_AddAsset_FullMethodName           = "/vault.v1.VaultService/AddAsset"
	VaultService_SetLossFraction_FullMethodName    = "/vault.v1.VaultService/SetLossFraction"
	VaultService_SetStalenessWindow_FullMethodName = "/vault.v1.VaultService/SetStalenessWindow"
	VaultService_SetDisabled_FullMethodName        = "/vault.v1.VaultService/SetDisabled"
	VaultService_GrantToken_FullMethodName         = "/vault.v1.VaultService/GrantToken"
	VaultService_RevokeToken_FullMethodName        = "/vault.v1.VaultService/RevokeToken"
	VaultService_SetFrozen_FullMethodName          = "/vault.v1.VaultService/SetFrozen"
)

// VaultServiceClient is the client API for VaultService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// VaultService is the full admin/operator/queue surface of the custodial
// vault. Decimal amounts travel as strings to avoid floating point loss.
type VaultServiceClient interface {
	// Share flow (called by the external deposit/withdraw request queue)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	// Status inspection
	GetVaultStatus(ctx context.Context, in *GetVaultStatusRequest, opts ...grpc.CallOption) (*GetVaultStatusResponse, error)
	// Operator checkout / reconciliation cycle
	StartOperation(ctx context.Context, in *StartOperationRequest, opts ...grpc.CallOption) (*StartOperationResponse, error)
	FinishCheckin(ctx context.Context, in *FinishCheckinRequest, opts ...grpc.CallOption) (*FinishCheckinResponse, error)
	RevalueAsset(ctx context.Context, in *RevalueAssetRequest, opts ...grpc.CallOption) (*RevalueAssetResponse, error)
	FinishReconcile(ctx context.Context, in *FinishReconcileRequest, opts ...grpc.CallOption) (*FinishReconcileResponse, error)
	// Admin emergency path
	ForceAbandon(ctx context.Context, in *ForceAbandonRequest, opts ...grpc.CallOption) (*ForceAbandonResponse, error)
	// Price feed ingestion
	RegisterFeed(ctx context.Context, in *RegisterFeedRequest, opts ...grpc.CallOption) (*RegisterFeedResponse, error)
	RefreshPrice(ctx context.Context, in *RefreshPriceRequest, opts ...grpc.CallOption) (*RefreshPriceResponse, error)
	GetPrice(ctx context.Context, in *GetPriceRequest, opts ...grpc.CallOption) (*GetPriceResponse, error)
	// Admin surface
	AddAsset(ctx context.Context, in *AddAssetRequest, opts ...grpc.CallOption) (*AddAssetResponse, error)
	SetLossFraction(ctx context.Context, in *SetLossFractionRequest, opts ...grpc.CallOption) (*SetLossFractionResponse, error)
	SetStalenessWindow(ctx context.Context, in *SetStalenessWindowRequest, opts ...grpc.CallOption) (*SetStalenessWindowResponse, error)
	SetDisabled(ctx context.Context, in *SetDisabledRequest, opts ...grpc.CallOption) (*SetDisabledResponse, error)
	GrantToken(ctx context.Context, in *GrantTokenRequest, opts ...grpc.CallOption) (*GrantTokenResponse, error)
	RevokeToken(ctx context.Context, in *RevokeTokenRequest, opts ...grpc.CallOption) (*RevokeTokenResponse, error)
	SetFrozen(ctx context.Context, in *SetFrozenRequest, opts ...grpc.CallOption) (*SetFrozenResponse, error)
}

type vaultServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVaultServiceClient(cc grpc.ClientConnInterface) VaultServiceClient {
	return &vaultServiceClient{cc}
}

func (c *vaultServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DepositResponse)
	err := c.cc.Invoke(ctx, VaultService_Deposit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WithdrawResponse)
	err := c.cc.Invoke(ctx, VaultService_Withdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) GetVaultStatus(ctx context.Context, in *GetVaultStatusRequest, opts ...grpc.CallOption) (*GetVaultStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetVaultStatusResponse)
	err := c.cc.Invoke(ctx, VaultService_GetVaultStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) StartOperation(ctx context.Context, in *StartOperationRequest, opts ...grpc.CallOption) (*StartOperationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartOperationResponse)
	err := c.cc.Invoke(ctx, VaultService_StartOperation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) FinishCheckin(ctx context.Context, in *FinishCheckinRequest, opts ...grpc.CallOption) (*FinishCheckinResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinishCheckinResponse)
	err := c.cc.Invoke(ctx, VaultService_FinishCheckin_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) RevalueAsset(ctx context.Context, in *RevalueAssetRequest, opts ...grpc.CallOption) (*RevalueAssetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RevalueAssetResponse)
	err := c.cc.Invoke(ctx, VaultService_RevalueAsset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) FinishReconcile(ctx context.Context, in *FinishReconcileRequest, opts ...grpc.CallOption) (*FinishReconcileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinishReconcileResponse)
	err := c.cc.Invoke(ctx, VaultService_FinishReconcile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) ForceAbandon(ctx context.Context, in *ForceAbandonRequest, opts ...grpc.CallOption) (*ForceAbandonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ForceAbandonResponse)
	err := c.cc.Invoke(ctx, VaultService_ForceAbandon_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) RegisterFeed(ctx context.Context, in *RegisterFeedRequest, opts ...grpc.CallOption) (*RegisterFeedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterFeedResponse)
	err := c.cc.Invoke(ctx, VaultService_RegisterFeed_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) RefreshPrice(ctx context.Context, in *RefreshPriceRequest, opts ...grpc.CallOption) (*RefreshPriceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RefreshPriceResponse)
	err := c.cc.Invoke(ctx, VaultService_RefreshPrice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) GetPrice(ctx context.Context, in *GetPriceRequest, opts ...grpc.CallOption) (*GetPriceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPriceResponse)
	err := c.cc.Invoke(ctx, VaultService_GetPrice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) AddAsset(ctx context.Context, in *AddAssetRequest, opts ...grpc.CallOption) (*AddAssetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddAssetResponse)
	err := c.cc.Invoke(ctx, VaultService_AddAsset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) SetLossFraction(ctx context.Context, in *SetLossFractionRequest, opts ...grpc.CallOption) (*SetLossFractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetLossFractionResponse)
	err := c.cc.Invoke(ctx, VaultService_SetLossFraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) SetStalenessWindow(ctx context.Context, in *SetStalenessWindowRequest, opts ...grpc.CallOption) (*SetStalenessWindowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetStalenessWindowResponse)
	err := c.cc.Invoke(ctx, VaultService_SetStalenessWindow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) SetDisabled(ctx context.Context, in *SetDisabledRequest, opts ...grpc.CallOption) (*SetDisabledResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetDisabledResponse)
	err := c.cc.Invoke(ctx, VaultService_SetDisabled_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) GrantToken(ctx context.Context, in *GrantTokenRequest, opts ...grpc.CallOption) (*GrantTokenResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GrantTokenResponse)
	err := c.cc.Invoke(ctx, VaultService_GrantToken_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) RevokeToken(ctx context.Context, in *RevokeTokenRequest, opts ...grpc.CallOption) (*RevokeTokenResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RevokeTokenResponse)
	err := c.cc.Invoke(ctx, VaultService_RevokeToken_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultServiceClient) SetFrozen(ctx context.Context, in *SetFrozenRequest, opts ...grpc.CallOption) (*SetFrozenResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetFrozenResponse)
	err := c.cc.Invoke(ctx, VaultService_SetFrozen_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VaultServiceServer is the server API for VaultService service.
// All implementations must embed UnimplementedVaultServiceServer
// for forward compatibility.
//
// VaultService is the full admin/operator/queue surface of the custodial
// vault. Decimal amounts travel as strings to avoid floating point loss.
type VaultServiceServer interface {
	// Share flow (called by the external deposit/withdraw request queue)
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	// Status inspection
	GetVaultStatus(context.Context, *GetVaultStatusRequest) (*GetVaultStatusResponse, error)
	// Operator checkout / reconciliation cycle
	StartOperation(context.Context, *StartOperationRequest) (*StartOperationResponse, error)
	FinishCheckin(context.Context, *FinishCheckinRequest) (*FinishCheckinResponse, error)
	RevalueAsset(context.Context, *RevalueAssetRequest) (*RevalueAssetResponse, error)
	FinishReconcile(context.Context, *FinishReconcileRequest) (*FinishReconcileResponse, error)
	// Admin emergency path
	ForceAbandon(context.Context, *ForceAbandonRequest) (*ForceAbandonResponse, error)
	// Price feed ingestion
	RegisterFeed(context.Context, *RegisterFeedRequest) (*RegisterFeedResponse, error)
	RefreshPrice(context.Context, *RefreshPriceRequest) (*RefreshPriceResponse, error)
	GetPrice(context.Context, *GetPriceRequest) (*GetPriceResponse, error)
	// Admin surface
	AddAsset(context.Context, *AddAssetRequest) (*AddAssetResponse, error)
	SetLossFraction(context.Context, *SetLossFractionRequest) (*SetLossFractionResponse, error)
	SetStalenessWindow(context.Context, *SetStalenessWindowRequest) (*SetStalenessWindowResponse, error)
	SetDisabled(context.Context, *SetDisabledRequest) (*SetDisabledResponse, error)
	GrantToken(context.Context, *GrantTokenRequest) (*GrantTokenResponse, error)
	RevokeToken(context.Context, *RevokeTokenRequest) (*RevokeTokenResponse, error)
	SetFrozen(context.Context, *SetFrozenRequest) (*SetFrozenResponse, error)
	mustEmbedUnimplementedVaultServiceServer()
}

// UnimplementedVaultServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedVaultServiceServer struct{}

func (UnimplementedVaultServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedVaultServiceServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedVaultServiceServer) GetVaultStatus(context.Context, *GetVaultStatusRequest) (*GetVaultStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVaultStatus not implemented")
}
func (UnimplementedVaultServiceServer) StartOperation(context.Context, *StartOperationRequest) (*StartOperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartOperation not implemented")
}
func (UnimplementedVaultServiceServer) FinishCheckin(context.Context, *FinishCheckinRequest) (*FinishCheckinResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FinishCheckin not implemented")
}
func (UnimplementedVaultServiceServer) RevalueAsset(context.Context, *RevalueAssetRequest) (*RevalueAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RevalueAsset not implemented")
}
func (UnimplementedVaultServiceServer) FinishReconcile(context.Context, *FinishReconcileRequest) (*FinishReconcileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FinishReconcile not implemented")
}
func (UnimplementedVaultServiceServer) ForceAbandon(context.Context, *ForceAbandonRequest) (*ForceAbandonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ForceAbandon not implemented")
}
func (UnimplementedVaultServiceServer) RegisterFeed(context.Context, *RegisterFeedRequest) (*RegisterFeedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterFeed not implemented")
}
func (UnimplementedVaultServiceServer) RefreshPrice(context.Context, *RefreshPriceRequest) (*RefreshPriceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshPrice not implemented")
}
func (UnimplementedVaultServiceServer) GetPrice(context.Context, *GetPriceRequest) (*GetPriceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPrice not implemented")
}
func (UnimplementedVaultServiceServer) AddAsset(context.Context, *AddAssetRequest) (*AddAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddAsset not implemented")
}
func (UnimplementedVaultServiceServer) SetLossFraction(context.Context, *SetLossFractionRequest) (*SetLossFractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetLossFraction not implemented")
}
func (UnimplementedVaultServiceServer) SetStalenessWindow(context.Context, *SetStalenessWindowRequest) (*SetStalenessWindowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetStalenessWindow not implemented")
}
func (UnimplementedVaultServiceServer) SetDisabled(context.Context, *SetDisabledRequest) (*SetDisabledResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetDisabled not implemented")
}
func (UnimplementedVaultServiceServer) GrantToken(context.Context, *GrantTokenRequest) (*GrantTokenResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GrantToken not implemented")
}
func (UnimplementedVaultServiceServer) RevokeToken(context.Context, *RevokeTokenRequest) (*RevokeTokenResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RevokeToken not implemented")
}
func (UnimplementedVaultServiceServer) SetFrozen(context.Context, *SetFrozenRequest) (*SetFrozenResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetFrozen not implemented")
}
func (UnimplementedVaultServiceServer) mustEmbedUnimplementedVaultServiceServer() {}
func (UnimplementedVaultServiceServer) testEmbeddedByValue()                      {}

// UnsafeVaultServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VaultServiceServer will
// result in compilation errors.
type UnsafeVaultServiceServer interface {
	mustEmbedUnimplementedVaultServiceServer()
}

func RegisterVaultServiceServer(s grpc.ServiceRegistrar, srv VaultServiceServer) {
	// If the following call pancis, it indicates UnimplementedVaultServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&VaultService_ServiceDesc, srv)
}

func _VaultService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_Deposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_Withdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_GetVaultStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVaultStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).GetVaultStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_GetVaultStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).GetVaultStatus(ctx, req.(*GetVaultStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_StartOperation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartOperationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).StartOperation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_StartOperation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).StartOperation(ctx, req.(*StartOperationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_FinishCheckin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinishCheckinRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).FinishCheckin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_FinishCheckin_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).FinishCheckin(ctx, req.(*FinishCheckinRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_RevalueAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RevalueAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).RevalueAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_RevalueAsset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).RevalueAsset(ctx, req.(*RevalueAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_FinishReconcile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinishReconcileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).FinishReconcile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_FinishReconcile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).FinishReconcile(ctx, req.(*FinishReconcileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_ForceAbandon_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ForceAbandonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).ForceAbandon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_ForceAbandon_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).ForceAbandon(ctx, req.(*ForceAbandonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_RegisterFeed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterFeedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).RegisterFeed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_RegisterFeed_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).RegisterFeed(ctx, req.(*RegisterFeedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_RefreshPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).RefreshPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_RefreshPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).RefreshPrice(ctx, req.(*RefreshPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_GetPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).GetPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_GetPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).GetPrice(ctx, req.(*GetPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_AddAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).AddAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_AddAsset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).AddAsset(ctx, req.(*AddAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_SetLossFraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetLossFractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).SetLossFraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_SetLossFraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).SetLossFraction(ctx, req.(*SetLossFractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_SetStalenessWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetStalenessWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).SetStalenessWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_SetStalenessWindow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).SetStalenessWindow(ctx, req.(*SetStalenessWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_SetDisabled_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetDisabledRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).SetDisabled(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_SetDisabled_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).SetDisabled(ctx, req.(*SetDisabledRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_GrantToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GrantTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).GrantToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_GrantToken_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).GrantToken(ctx, req.(*GrantTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_RevokeToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RevokeTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).RevokeToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_RevokeToken_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).RevokeToken(ctx, req.(*RevokeTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaultService_SetFrozen_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetFrozenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServiceServer).SetFrozen(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaultService_SetFrozen_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServiceServer).SetFrozen(ctx, req.(*SetFrozenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VaultService_ServiceDesc is the grpc.ServiceDesc for VaultService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var VaultService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "vault.v1.VaultService",
	HandlerType: (*VaultServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Deposit",
			Handler:    _VaultService_Deposit_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _VaultService_Withdraw_Handler,
		},
		{
			MethodName: "GetVaultStatus",
			Handler:    _VaultService_GetVaultStatus_Handler,
		},
		{
			MethodName: "StartOperation",
			Handler:    _VaultService_StartOperation_Handler,
		},
		{
			MethodName: "FinishCheckin",
			Handler:    _VaultService_FinishCheckin_Handler,
		},
		{
			MethodName: "RevalueAsset",
			Handler:    _VaultService_RevalueAsset_Handler,
		},
		{
			MethodName: "FinishReconcile",
			Handler:    _VaultService_FinishReconcile_Handler,
		},
		{
			MethodName: "ForceAbandon",
			Handler:    _VaultService_ForceAbandon_Handler,
		},
		{
			MethodName: "RegisterFeed",
			Handler:    _VaultService_RegisterFeed_Handler,
		},
		{
			MethodName: "RefreshPrice",
			Handler:    _VaultService_RefreshPrice_Handler,
		},
		{
			MethodName: "GetPrice",
			Handler:    _VaultService_GetPrice_Handler,
		},
		{
			MethodName: "AddAsset",
			Handler:    _VaultService_AddAsset_Handler,
		},
		{
			MethodName: "SetLossFraction",
			Handler:    _VaultService_SetLossFraction_Handler,
		},
		{
			MethodName: "SetStalenessWindow",
			Handler:    _VaultService_SetStalenessWindow_Handler,
		},
		{
			MethodName: "SetDisabled",
			Handler:    _VaultService_SetDisabled_Handler,
		},
		{
			MethodName: "GrantToken",
			Handler:    _VaultService_GrantToken_Handler,
		},
		{
			MethodName: "RevokeToken",
			Handler:    _VaultService_RevokeToken_Handler,
		},
		{
			MethodName: "SetFrozen",
			Handler:    _VaultService_SetFrozen_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vault/v1/vault.proto",
}
