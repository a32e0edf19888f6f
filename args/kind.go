package args

// Kind identifies an argument shape.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindStringList
	KindNumber
	KindNumberList
	KindPath
	KindPathList
	KindBool
	KindBoolList
	KindDialog
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindString:
		return "string"
	case KindStringList:
		return "string-list"
	case KindNumber:
		return "number"
	case KindNumberList:
		return "number-list"
	case KindPath:
		return "path"
	case KindPathList:
		return "path-list"
	case KindBool:
		return "bool"
	case KindBoolList:
		return "bool-list"
	case KindDialog:
		return "dialog"
	default:
		return "unknown"
	}
}

// Placeholder returns the fragment shown after the command name in usage lines.
// Empty shapes have no placeholder.
func (k Kind) Placeholder() string {
	switch k {
	case KindString:
		return "<文本>"
	case KindStringList:
		return "[文本...]"
	case KindNumber:
		return "<整数>"
	case KindNumberList:
		return "[整数...]"
	case KindPath:
		return "<路径>"
	case KindPathList:
		return "[路径...]"
	case KindBool:
		return "<true|false>"
	case KindBoolList:
		return "[true|false...]"
	case KindDialog:
		return "[" + StdinToken + "]"
	default:
		return ""
	}
}

// Describe explains in one sentence what arguments the shape accepts.
func (k Kind) Describe() string {
	switch k {
	case KindEmpty:
		return "不接受参数"
	case KindString:
		return "接受 1 个文本参数"
	case KindStringList:
		return "接受任意个文本参数"
	case KindNumber:
		return "接受 1 个整数参数"
	case KindNumberList:
		return "接受任意个整数参数"
	case KindPath:
		return "接受 1 个路径参数"
	case KindPathList:
		return "接受任意个路径参数"
	case KindBool:
		return "接受 1 个布尔参数 (true 或 false, 不区分大小写)"
	case KindBoolList:
		return "接受任意个布尔参数 (true 或 false, 不区分大小写)"
	case KindDialog:
		return "以对话方式提问; 传入 " + StdinToken + " 时从标准输入读取 JSON 答案记录并回放"
	default:
		return ""
	}
}
