package infrastructure

type serverInterface interface {
	Start() error
}
