package treelog

const (
	// rootName is the reserved name of the root logger.
	rootName = ""

	// nameSeparator splits a dotted logger name into its hierarchy.
	nameSeparator = '.'
)

const (
	errMsgUnknownLevel  = "unknown log level"
	errMsgNilConfig     = "logging config is nil"
	errMsgConfigInvalid = "logging configuration is invalid"
)
