package watchdog

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type registryComponent struct{ expired bool }

func (c *registryComponent) IsExpired(timeout time.Duration) bool { return c.expired }

func TestComponentSetAddIsIdempotent(t *testing.T) {
	set := newComponentSet()
	comp := &registryComponent{}

	set.Add(comp)
	set.Add(comp)
	assert.Equal(t, 1, set.Len())

	set.Add(nil)
	assert.Equal(t, 1, set.Len())
}

func TestComponentSetRemoveAbsentIsNoop(t *testing.T) {
	set := newComponentSet()
	set.Remove(&registryComponent{})
	assert.Equal(t, 0, set.Len())

	comp := &registryComponent{}
	set.Add(comp)
	set.Remove(comp)
	assert.Equal(t, 0, set.Len())
}

func TestComponentSetClear(t *testing.T) {
	set := newComponentSet()
	set.Add(&registryComponent{})
	set.Add(&registryComponent{})
	assert.Equal(t, 2, set.Len())

	set.Clear()
	assert.Equal(t, 0, set.Len())
}

func TestComponentSetForEachEarlyStop(t *testing.T) {
	set := newComponentSet()
	for i := 0; i < 5; i++ {
		set.Add(&registryComponent{})
	}

	visited := 0
	set.ForEach(func(component Component) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestComponentSetForEachUnderConcurrentMutation(t *testing.T) {
	set := newComponentSet()
	for i := 0; i < 50; i++ {
		set.Add(&registryComponent{})
	}

	var mutators sync.WaitGroup
	for g := 0; g < 4; g++ {
		mutators.Add(1)
		go func() {
			defer mutators.Done()
			for i := 0; i < 1000; i++ {
				comp := &registryComponent{}
				set.Add(comp)
				set.Remove(comp)
			}
		}()
	}

	stop := make(chan struct{})
	var iterator sync.WaitGroup
	iterator.Add(1)
	go func() {
		defer iterator.Done()
		for {
			set.ForEach(func(component Component) bool { return true })
			select {
			case <-stop:
				return
			default:
			}
		}
	}()

	// ждём мутаторы, потом гасим итератор
	mutators.Wait()
	close(stop)
	iterator.Wait()

	assert.Equal(t, 50, set.Len())
}
