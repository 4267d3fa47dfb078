package types

// SimType 仿真类型
type SimType int

// 仿真类型常量定义
const (
	TypeString SimType = iota // 张紧弦上的珠子
	TypeSpring                // 弹簧连接的珠子

	TypeUnknown SimType = -1 // 未设置连接介质
)

// simTypeName 类型名称映射（与参数文件中的标记一致）
var simTypeName = map[SimType]string{
	TypeString: "String",
	TypeSpring: "Spring",
}

// String 返回仿真类型的字符串表示
func (t SimType) String() string {
	if name, ok := simTypeName[t]; ok {
		return name
	}
	return "Unknown"
}

// 默认参数常量定义
var (
	Tolerance    = 1e-10 // 特征值负数容差（相对最大特征值）
	FitTolerance = 1e-9  // 初始条件回代容差
)
