package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/GodYY/gutils/assert"
	"github.com/GodYY/linkstack"
)

func main() {
	scriptPath := flag.String("script", "", "XML script to run instead of the built-in walk-through")
	flag.Parse()

	l := linkstack.New()
	defer l.Release()

	if *scriptPath != "" {
		script, err := linkstack.LoadScript(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}

		if err := script.Run(l, os.Stdout); err != nil {
			log.Fatal(err)
		}

		fmt.Println("script", script.Name, "passed")
		return
	}

	assert.Equal(l.Len(), 0, "new list not empty")

	l.Push(99)
	assert.Equal(l.Len(), 1, "len after one push")

	l.Push(88).Push(77).Push(66).Print()
	fmt.Printf("List length: %d\n", l.Len())
	assert.Equal(l.Len(), 4, "len after four pushes")

	for item, ok := l.Pop(); ok; item, ok = l.Pop() {
		fmt.Printf("popped: %d\n", item)
		l.Print()
	}

	_, ok := l.Pop()
	assert.Assert(!ok, "pop on empty list")

	l.Push(linkstack.None)
	item, ok := l.Pop()
	assert.Assert(ok && item == linkstack.None, "sentinel payload lost")

	l.Drop().Print().Push(5).Push(4).Print()
	assert.Equal(l.Len(), 2, "len after drop and two pushes")

	fmt.Println("so far so good")
}
