package serialisation

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Algorithm names an encoding registered with Algorithms.
type Algorithm = string

var ErrUnknownAlgorithm = errors.New("unknown serialisation algorithm")

// Encoder turns an arbitrary container into bytes.
// Implementations normalise their input first.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(v any) ([]byte, error)

func (f EncoderFunc) Encode(v any) ([]byte, error) { return f(v) }

type Algorithms struct {
	sync.RWMutex
	algos map[string]Encoder
}

// NewAlgorithms returns an empty registry.
func NewAlgorithms() *Algorithms {
	return &Algorithms{algos: map[string]Encoder{}}
}

func (a *Algorithms) Register(name string, enc Encoder) {
	a.Lock()
	defer a.Unlock()
	a.algos[name] = enc
}

func (a *Algorithms) Get(algo string) Encoder {
	a.RLock()
	defer a.RUnlock()
	return a.algos[algo]
}

func (a *Algorithms) Names() []string {
	a.RLock()
	defer a.RUnlock()
	names := []string{}
	for n := range a.algos {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a *Algorithms) Encode(v any, algo string) ([]byte, error) {
	enc := a.Get(algo)
	if enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}
	return enc.Encode(v)
}

// Encoders holds the built-in algorithms JSON, JCS and YAML.
var Encoders = NewAlgorithms()

func init() {
	Encoders.Register(JSON, EncoderFunc(EncodeJSON))
	Encoders.Register(JCS, EncoderFunc(EncodeJCS))
	Encoders.Register(YAML, EncoderFunc(EncodeYAML))
}

// Encode normalises v and encodes it with the named built-in algorithm.
func Encode(v any, algo string) ([]byte, error) {
	return Encoders.Encode(v, algo)
}
