package audio

import "reflect"

// An Initer is told the stream parameters before it renders anything.
type Initer interface {
	InitAudio(Params)
}

type Params struct {
	SampleRate float64
	BufferSize int
}

func (p *Params) InitAudio(q Params) { *p = q }

// Init calls InitAudio on x, or, if x is not an Initer, on every exported
// field or element of x that is.
func Init(x interface{}, p Params) {
	if x, ok := x.(Initer); ok {
		x.InitAudio(p)
		return
	}

	initVal := func(v reflect.Value) {
		if v.CanAddr() && v.Kind() != reflect.Ptr && v.Kind() != reflect.Interface {
			v = v.Addr()
		}
		if v.CanInterface() {
			Init(v.Interface(), p)
		}
	}
	v := reflect.Indirect(reflect.ValueOf(x))
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).PkgPath != "" {
				continue
			}
			initVal(v.Field(i))
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			initVal(v.Index(i))
		}
	}
}
