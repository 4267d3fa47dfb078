package modes

import "errors"

// 求解过程中的错误类型，使用 errors.Is 判断
var (
	// ErrInvalidInput 物理参数错误（质量、连接值或张力不为正）
	ErrInvalidInput = errors.New("invalid input")

	// ErrDimensionMismatch 矩阵维度不匹配
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrNumerical 非物理的负特征值或本征分解失败
	ErrNumerical = errors.New("numerical error")

	// ErrSingularSystem 初始条件求解矩阵奇异
	ErrSingularSystem = errors.New("singular system")

	// ErrUndefined 零频率模态的速度系数无定义
	ErrUndefined = errors.New("undefined coefficient")
)

// 求解阶段
const (
	OpBuild   = "build"
	OpReduce  = "reduce"
	OpExtract = "extract"
	OpFit     = "fit"
)

// Error 带求解阶段信息的错误
type Error struct {
	Op  string // 出错阶段
	Err error  // 底层错误
}

func (e *Error) Error() string { return "modes " + e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// wrapOp 为错误附加阶段信息
func wrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
