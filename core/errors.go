package core

import (
	"errors"
	"strconv"
)

// DomainError 是领域层的统一错误类型。
//
// 使用场景：
//   - Catalog 错误：NOT_FOUND（名称 / ID 查不到）
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED
//   - Service 错误：INVALID_INPUT（非法的过滤表达式、加权选项等）
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND"）
	Message string // 错误消息
	Module  string // 模块名称（如 "catalog", "store"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误链中是否存在 DomainError
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// GetDomainError 获取错误链中的 DomainError，如果不存在则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 输入无效
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误
)

// 模块名称常量
const (
	ModuleCatalog = "catalog" // 桌游目录
	ModuleCache   = "cache"   // 向量缓存
	ModuleStore   = "store"   // 存储模块
	ModuleService = "service" // 服务模块
)

// ErrGameNotFound 按名称构造 NOT_FOUND 错误。
func ErrGameNotFound(name string) *DomainError {
	return NewDomainError(ModuleCatalog, ErrorCodeNotFound, "catalog: game not found: "+name)
}

// ErrGameIDNotFound 按 ID 构造 NOT_FOUND 错误。
func ErrGameIDNotFound(id int64) *DomainError {
	return NewDomainError(ModuleCatalog, ErrorCodeNotFound, "catalog: game not found: id="+strconv.FormatInt(id, 10))
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidInput
	}
	return false
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotSupported
	}
	return false
}
