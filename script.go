package linkstack

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/pkg/errors"
)

const indent = "    "

// Script operations.
const (
	OpPush  = "push"
	OpPop   = "pop"
	OpPeek  = "peek"
	OpDrop  = "drop"
	OpPrint = "print"
	OpLen   = "len"
)

// ErrExpectation is wrapped by Script.Run when a step observes a
// result other than the one it expects.
var ErrExpectation = errors.New("expectation failed")

// Step is one operation applied to a list. Expect, Empty and Len are
// optional checks made after the operation.
type Step struct {
	Op     string `xml:"op,attr"`
	Item   int32  `xml:"item,attr,omitempty"`
	Expect *int32 `xml:"expect,attr,omitempty"`
	Empty  bool   `xml:"empty,attr,omitempty"`
	Len    *int   `xml:"len,attr,omitempty"`
}

// Script is a sequence of steps, stored as XML:
//
//	<script name="demo">
//	    <step op="push" item="99" len="1"></step>
//	    <step op="pop" expect="99" len="0"></step>
//	    <step op="pop" empty="true"></step>
//	</script>
type Script struct {
	XMLName xml.Name `xml:"script"`
	Name    string   `xml:"name,attr,omitempty"`
	Steps   []*Step  `xml:"step"`
}

func DecodeScript(r io.Reader) (*Script, error) {
	script := new(Script)
	if err := xml.NewDecoder(r).Decode(script); err != nil {
		return nil, errors.WithMessage(err, "decode script")
	}
	return script, nil
}

func EncodeScript(w io.Writer, script *Script) error {
	encoder := xml.NewEncoder(w)
	encoder.Indent("", indent)
	if err := encoder.Encode(script); err != nil {
		return errors.WithMessage(err, "encode script")
	}
	return nil
}

func LoadScript(path string) (*Script, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	script, err := DecodeScript(file)
	if err != nil {
		return nil, errors.WithMessagef(err, "load script %s", path)
	}

	return script, nil
}

func SaveScript(script *Script, path string) (err error) {
	if script == nil {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	if err := EncodeScript(file, script); err != nil {
		return errors.WithMessagef(err, "save script %s", path)
	}

	return nil
}

// Run applies the steps in order to l, printing to w. It stops at the
// first step whose check fails.
func (s *Script) Run(l *List, w io.Writer) error {
	for i, step := range s.Steps {
		if err := step.apply(l, w); err != nil {
			return errors.WithMessagef(err, "step %d(%s)", i+1, step.Op)
		}
	}
	return nil
}

func (step *Step) apply(l *List, w io.Writer) error {
	switch step.Op {
	case OpPush:
		l.Push(step.Item)

	case OpPop, OpPeek:
		var item int32
		var ok bool
		if step.Op == OpPop {
			item, ok = l.Pop()
		} else {
			item, ok = l.Peek()
		}

		if step.Empty {
			if ok {
				return errors.WithMessagef(ErrExpectation, "want empty, got %d", item)
			}
		} else if step.Expect != nil {
			if !ok {
				return errors.WithMessagef(ErrExpectation, "want %d, got empty", *step.Expect)
			}
			if item != *step.Expect {
				return errors.WithMessagef(ErrExpectation, "want %d, got %d", *step.Expect, item)
			}
		}

	case OpDrop:
		l.Drop()

	case OpPrint:
		l.Fprint(w)

	case OpLen:

	default:
		return errors.Errorf("unknown op \"%s\"", step.Op)
	}

	if step.Len != nil && l.Len() != *step.Len {
		return errors.WithMessagef(ErrExpectation, "want len %d, got %d", *step.Len, l.Len())
	}

	return nil
}
