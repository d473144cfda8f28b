package util

import (
	"github.com/mgtv-tech/gosema/pkg/log"
)

type PanicHandler func(interface{})

func Recovery(hs ...PanicHandler) {
	if r := recover(); r != nil {
		log.Errorf("panic : %v, stack: %s", r, StackBytes(1<<18))
		for _, h := range hs {
			h(r)
		}
	}
}

// SafeGo runs f in a new goroutine, logging instead of crashing on panic.
func SafeGo(f func(), panicCallBack PanicHandler) {
	go func() {
		defer Recovery(panicCallBack)
		f()
	}()
}
