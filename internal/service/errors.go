package service

// 业务错误分类；Msg 原样展示给用户，transport 层负责映射状态码
type Kind int

const (
	KindValidation Kind = iota
	KindDuplicate
	KindBlocked // 删除被外键引用挡住
	KindPermission
	KindLocked
	KindUnauthorized
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }
func Duplicate(msg string) error  { return &Error{Kind: KindDuplicate, Msg: msg} }
func Blocked(msg string) error    { return &Error{Kind: KindBlocked, Msg: msg} }
func Permission(msg string) error { return &Error{Kind: KindPermission, Msg: msg} }
func Locked(msg string) error     { return &Error{Kind: KindLocked, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }
