package util

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
)

type Frame struct {
	FuncName string
	File     string
	Line     int
}

func (f *Frame) String() string {
	if f == nil {
		return "no frame"
	}
	return fmt.Sprintf("%s  %s:%d", f.FuncName, f.File, f.Line)
}

type Stack struct {
	Frames []*Frame
}

func (s *Stack) StringOneLine() string {
	var b bytes.Buffer
	for i, f := range s.Frames {
		if i == 0 {
			fmt.Fprintf(&b, "[%s(%s:%d)]", f.FuncName, f.File, f.Line)
		} else {
			fmt.Fprintf(&b, "->[%s]", f.FuncName)
		}
	}
	return b.String()
}

func (s *Stack) String() string {
	var b bytes.Buffer
	for i, f := range s.Frames {
		fmt.Fprintf(&b, "(%d)  %s\n", len(s.Frames)-i-1, f.FuncName)
		fmt.Fprintf(&b, "        %s:%d\n", f.File, f.Line)
	}
	if len(s.Frames) != 0 {
		fmt.Fprint(&b, "......\n")
	}
	return b.String()
}

func CallerStack(skip, depth int) Stack {
	s := make([]*Frame, 0, depth-skip)
	for i := 0; i < depth-skip; i++ {
		f := CallerFrame(skip + i)
		if f == nil {
			break
		}
		s = append(s, f)
	}
	return Stack{Frames: s}
}

func CallerFrame(skip int) *Frame {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil || strings.HasPrefix(fn.Name(), "runtime.") {
		return nil
	}
	return &Frame{
		FuncName: fn.Name(),
		File:     file,
		Line:     line,
	}
}

func StackBytes(size int) []byte {
	if size == 0 {
		size = 10 * 1024
	}
	buf := make([]byte, size)
	n := runtime.Stack(buf, false)
	return buf[:n]
}
