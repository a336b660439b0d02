package converters

const (
	ErrMsgNotInteger  = "Given parameter is not a supported integer value."
	ErrMsgNotUnsigned = "Given parameter is not a supported unsigned integer value."
)
