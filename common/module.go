package common

type Module string

const (
	ModuleDropMint Module = "dropmint"
)

func (m Module) String() string {
	return string(m)
}
