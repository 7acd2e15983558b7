package configs

// Configurable marks scope values that are backed by a config expression.
type Configurable interface {
	ConfigExpr() string
}
