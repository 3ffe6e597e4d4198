package service

import "errors"

// 核心错误分类，由表现层映射为对外响应
var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrNotFound           = errors.New("resource not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrAlreadyPaid        = errors.New("order already paid")
	ErrGatewayUnreachable = errors.New("payment gateway unreachable")
	ErrGatewayDeclined    = errors.New("payment declined by gateway")
	ErrConflict           = errors.New("concurrent modification conflict")
)
