package observe

import "sync"

type combined1[T0, O comparable] struct {
	out  *State[O]
	pick func(T0) O
	mu   sync.Mutex
	left int
	has0 bool
	arg0 T0
}

func (c *combined1[T0, O]) publish() {
	c.mu.Lock()
	if !(c.has0) {
		c.mu.Unlock()
		return
	}
	arg0 := c.arg0
	c.mu.Unlock()
	_ = c.out.Next(c.pick(
		arg0,
	))
}

func (c *combined1[T0, O]) sourceFailed(reason error) {
	_ = c.out.Error(reason)
}

func (c *combined1[T0, O]) sourceDone() {
	c.mu.Lock()
	c.left--
	last := c.left == 0
	c.mu.Unlock()
	if last {
		_ = c.out.Complete()
	}
}

func Combine1[T0, O comparable](
	s0 *State[T0],
	pick func(T0) O,
) (*State[O], Unsubscribe, error) {
	c := &combined1[T0, O]{
		out:  NewState[O](),
		pick: pick,
		left: 1,
	}
	subs := &Subscriptions{}
	stop0, err := s0.Subscribe(Observer[T0]{
		Next: func(v T0) {
			c.mu.Lock()
			c.has0 = true
			c.arg0 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop0)
	return c.out, subs.Clear, nil
}

type combined2[T0, T1, O comparable] struct {
	out  *State[O]
	pick func(T0, T1) O
	mu   sync.Mutex
	left int
	has0 bool
	arg0 T0
	has1 bool
	arg1 T1
}

func (c *combined2[T0, T1, O]) publish() {
	c.mu.Lock()
	if !(c.has0 && c.has1) {
		c.mu.Unlock()
		return
	}
	arg0 := c.arg0
	arg1 := c.arg1
	c.mu.Unlock()
	_ = c.out.Next(c.pick(
		arg0,
		arg1,
	))
}

func (c *combined2[T0, T1, O]) sourceFailed(reason error) {
	_ = c.out.Error(reason)
}

func (c *combined2[T0, T1, O]) sourceDone() {
	c.mu.Lock()
	c.left--
	last := c.left == 0
	c.mu.Unlock()
	if last {
		_ = c.out.Complete()
	}
}

func Combine2[T0, T1, O comparable](
	s0 *State[T0],
	s1 *State[T1],
	pick func(T0, T1) O,
) (*State[O], Unsubscribe, error) {
	c := &combined2[T0, T1, O]{
		out:  NewState[O](),
		pick: pick,
		left: 2,
	}
	subs := &Subscriptions{}
	stop0, err := s0.Subscribe(Observer[T0]{
		Next: func(v T0) {
			c.mu.Lock()
			c.has0 = true
			c.arg0 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop0)
	stop1, err := s1.Subscribe(Observer[T1]{
		Next: func(v T1) {
			c.mu.Lock()
			c.has1 = true
			c.arg1 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop1)
	return c.out, subs.Clear, nil
}

type combined3[T0, T1, T2, O comparable] struct {
	out  *State[O]
	pick func(T0, T1, T2) O
	mu   sync.Mutex
	left int
	has0 bool
	arg0 T0
	has1 bool
	arg1 T1
	has2 bool
	arg2 T2
}

func (c *combined3[T0, T1, T2, O]) publish() {
	c.mu.Lock()
	if !(c.has0 && c.has1 && c.has2) {
		c.mu.Unlock()
		return
	}
	arg0 := c.arg0
	arg1 := c.arg1
	arg2 := c.arg2
	c.mu.Unlock()
	_ = c.out.Next(c.pick(
		arg0,
		arg1,
		arg2,
	))
}

func (c *combined3[T0, T1, T2, O]) sourceFailed(reason error) {
	_ = c.out.Error(reason)
}

func (c *combined3[T0, T1, T2, O]) sourceDone() {
	c.mu.Lock()
	c.left--
	last := c.left == 0
	c.mu.Unlock()
	if last {
		_ = c.out.Complete()
	}
}

func Combine3[T0, T1, T2, O comparable](
	s0 *State[T0],
	s1 *State[T1],
	s2 *State[T2],
	pick func(T0, T1, T2) O,
) (*State[O], Unsubscribe, error) {
	c := &combined3[T0, T1, T2, O]{
		out:  NewState[O](),
		pick: pick,
		left: 3,
	}
	subs := &Subscriptions{}
	stop0, err := s0.Subscribe(Observer[T0]{
		Next: func(v T0) {
			c.mu.Lock()
			c.has0 = true
			c.arg0 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop0)
	stop1, err := s1.Subscribe(Observer[T1]{
		Next: func(v T1) {
			c.mu.Lock()
			c.has1 = true
			c.arg1 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop1)
	stop2, err := s2.Subscribe(Observer[T2]{
		Next: func(v T2) {
			c.mu.Lock()
			c.has2 = true
			c.arg2 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop2)
	return c.out, subs.Clear, nil
}

type combined4[T0, T1, T2, T3, O comparable] struct {
	out  *State[O]
	pick func(T0, T1, T2, T3) O
	mu   sync.Mutex
	left int
	has0 bool
	arg0 T0
	has1 bool
	arg1 T1
	has2 bool
	arg2 T2
	has3 bool
	arg3 T3
}

func (c *combined4[T0, T1, T2, T3, O]) publish() {
	c.mu.Lock()
	if !(c.has0 && c.has1 && c.has2 && c.has3) {
		c.mu.Unlock()
		return
	}
	arg0 := c.arg0
	arg1 := c.arg1
	arg2 := c.arg2
	arg3 := c.arg3
	c.mu.Unlock()
	_ = c.out.Next(c.pick(
		arg0,
		arg1,
		arg2,
		arg3,
	))
}

func (c *combined4[T0, T1, T2, T3, O]) sourceFailed(reason error) {
	_ = c.out.Error(reason)
}

func (c *combined4[T0, T1, T2, T3, O]) sourceDone() {
	c.mu.Lock()
	c.left--
	last := c.left == 0
	c.mu.Unlock()
	if last {
		_ = c.out.Complete()
	}
}

func Combine4[T0, T1, T2, T3, O comparable](
	s0 *State[T0],
	s1 *State[T1],
	s2 *State[T2],
	s3 *State[T3],
	pick func(T0, T1, T2, T3) O,
) (*State[O], Unsubscribe, error) {
	c := &combined4[T0, T1, T2, T3, O]{
		out:  NewState[O](),
		pick: pick,
		left: 4,
	}
	subs := &Subscriptions{}
	stop0, err := s0.Subscribe(Observer[T0]{
		Next: func(v T0) {
			c.mu.Lock()
			c.has0 = true
			c.arg0 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop0)
	stop1, err := s1.Subscribe(Observer[T1]{
		Next: func(v T1) {
			c.mu.Lock()
			c.has1 = true
			c.arg1 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop1)
	stop2, err := s2.Subscribe(Observer[T2]{
		Next: func(v T2) {
			c.mu.Lock()
			c.has2 = true
			c.arg2 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop2)
	stop3, err := s3.Subscribe(Observer[T3]{
		Next: func(v T3) {
			c.mu.Lock()
			c.has3 = true
			c.arg3 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop3)
	return c.out, subs.Clear, nil
}

type combined5[T0, T1, T2, T3, T4, O comparable] struct {
	out  *State[O]
	pick func(T0, T1, T2, T3, T4) O
	mu   sync.Mutex
	left int
	has0 bool
	arg0 T0
	has1 bool
	arg1 T1
	has2 bool
	arg2 T2
	has3 bool
	arg3 T3
	has4 bool
	arg4 T4
}

func (c *combined5[T0, T1, T2, T3, T4, O]) publish() {
	c.mu.Lock()
	if !(c.has0 && c.has1 && c.has2 && c.has3 && c.has4) {
		c.mu.Unlock()
		return
	}
	arg0 := c.arg0
	arg1 := c.arg1
	arg2 := c.arg2
	arg3 := c.arg3
	arg4 := c.arg4
	c.mu.Unlock()
	_ = c.out.Next(c.pick(
		arg0,
		arg1,
		arg2,
		arg3,
		arg4,
	))
}

func (c *combined5[T0, T1, T2, T3, T4, O]) sourceFailed(reason error) {
	_ = c.out.Error(reason)
}

func (c *combined5[T0, T1, T2, T3, T4, O]) sourceDone() {
	c.mu.Lock()
	c.left--
	last := c.left == 0
	c.mu.Unlock()
	if last {
		_ = c.out.Complete()
	}
}

func Combine5[T0, T1, T2, T3, T4, O comparable](
	s0 *State[T0],
	s1 *State[T1],
	s2 *State[T2],
	s3 *State[T3],
	s4 *State[T4],
	pick func(T0, T1, T2, T3, T4) O,
) (*State[O], Unsubscribe, error) {
	c := &combined5[T0, T1, T2, T3, T4, O]{
		out:  NewState[O](),
		pick: pick,
		left: 5,
	}
	subs := &Subscriptions{}
	stop0, err := s0.Subscribe(Observer[T0]{
		Next: func(v T0) {
			c.mu.Lock()
			c.has0 = true
			c.arg0 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop0)
	stop1, err := s1.Subscribe(Observer[T1]{
		Next: func(v T1) {
			c.mu.Lock()
			c.has1 = true
			c.arg1 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop1)
	stop2, err := s2.Subscribe(Observer[T2]{
		Next: func(v T2) {
			c.mu.Lock()
			c.has2 = true
			c.arg2 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop2)
	stop3, err := s3.Subscribe(Observer[T3]{
		Next: func(v T3) {
			c.mu.Lock()
			c.has3 = true
			c.arg3 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop3)
	stop4, err := s4.Subscribe(Observer[T4]{
		Next: func(v T4) {
			c.mu.Lock()
			c.has4 = true
			c.arg4 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop4)
	return c.out, subs.Clear, nil
}

type combined6[T0, T1, T2, T3, T4, T5, O comparable] struct {
	out  *State[O]
	pick func(T0, T1, T2, T3, T4, T5) O
	mu   sync.Mutex
	left int
	has0 bool
	arg0 T0
	has1 bool
	arg1 T1
	has2 bool
	arg2 T2
	has3 bool
	arg3 T3
	has4 bool
	arg4 T4
	has5 bool
	arg5 T5
}

func (c *combined6[T0, T1, T2, T3, T4, T5, O]) publish() {
	c.mu.Lock()
	if !(c.has0 && c.has1 && c.has2 && c.has3 && c.has4 && c.has5) {
		c.mu.Unlock()
		return
	}
	arg0 := c.arg0
	arg1 := c.arg1
	arg2 := c.arg2
	arg3 := c.arg3
	arg4 := c.arg4
	arg5 := c.arg5
	c.mu.Unlock()
	_ = c.out.Next(c.pick(
		arg0,
		arg1,
		arg2,
		arg3,
		arg4,
		arg5,
	))
}

func (c *combined6[T0, T1, T2, T3, T4, T5, O]) sourceFailed(reason error) {
	_ = c.out.Error(reason)
}

func (c *combined6[T0, T1, T2, T3, T4, T5, O]) sourceDone() {
	c.mu.Lock()
	c.left--
	last := c.left == 0
	c.mu.Unlock()
	if last {
		_ = c.out.Complete()
	}
}

func Combine6[T0, T1, T2, T3, T4, T5, O comparable](
	s0 *State[T0],
	s1 *State[T1],
	s2 *State[T2],
	s3 *State[T3],
	s4 *State[T4],
	s5 *State[T5],
	pick func(T0, T1, T2, T3, T4, T5) O,
) (*State[O], Unsubscribe, error) {
	c := &combined6[T0, T1, T2, T3, T4, T5, O]{
		out:  NewState[O](),
		pick: pick,
		left: 6,
	}
	subs := &Subscriptions{}
	stop0, err := s0.Subscribe(Observer[T0]{
		Next: func(v T0) {
			c.mu.Lock()
			c.has0 = true
			c.arg0 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop0)
	stop1, err := s1.Subscribe(Observer[T1]{
		Next: func(v T1) {
			c.mu.Lock()
			c.has1 = true
			c.arg1 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop1)
	stop2, err := s2.Subscribe(Observer[T2]{
		Next: func(v T2) {
			c.mu.Lock()
			c.has2 = true
			c.arg2 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop2)
	stop3, err := s3.Subscribe(Observer[T3]{
		Next: func(v T3) {
			c.mu.Lock()
			c.has3 = true
			c.arg3 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop3)
	stop4, err := s4.Subscribe(Observer[T4]{
		Next: func(v T4) {
			c.mu.Lock()
			c.has4 = true
			c.arg4 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop4)
	stop5, err := s5.Subscribe(Observer[T5]{
		Next: func(v T5) {
			c.mu.Lock()
			c.has5 = true
			c.arg5 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop5)
	return c.out, subs.Clear, nil
}

type combined7[T0, T1, T2, T3, T4, T5, T6, O comparable] struct {
	out  *State[O]
	pick func(T0, T1, T2, T3, T4, T5, T6) O
	mu   sync.Mutex
	left int
	has0 bool
	arg0 T0
	has1 bool
	arg1 T1
	has2 bool
	arg2 T2
	has3 bool
	arg3 T3
	has4 bool
	arg4 T4
	has5 bool
	arg5 T5
	has6 bool
	arg6 T6
}

func (c *combined7[T0, T1, T2, T3, T4, T5, T6, O]) publish() {
	c.mu.Lock()
	if !(c.has0 && c.has1 && c.has2 && c.has3 && c.has4 && c.has5 && c.has6) {
		c.mu.Unlock()
		return
	}
	arg0 := c.arg0
	arg1 := c.arg1
	arg2 := c.arg2
	arg3 := c.arg3
	arg4 := c.arg4
	arg5 := c.arg5
	arg6 := c.arg6
	c.mu.Unlock()
	_ = c.out.Next(c.pick(
		arg0,
		arg1,
		arg2,
		arg3,
		arg4,
		arg5,
		arg6,
	))
}

func (c *combined7[T0, T1, T2, T3, T4, T5, T6, O]) sourceFailed(reason error) {
	_ = c.out.Error(reason)
}

func (c *combined7[T0, T1, T2, T3, T4, T5, T6, O]) sourceDone() {
	c.mu.Lock()
	c.left--
	last := c.left == 0
	c.mu.Unlock()
	if last {
		_ = c.out.Complete()
	}
}

func Combine7[T0, T1, T2, T3, T4, T5, T6, O comparable](
	s0 *State[T0],
	s1 *State[T1],
	s2 *State[T2],
	s3 *State[T3],
	s4 *State[T4],
	s5 *State[T5],
	s6 *State[T6],
	pick func(T0, T1, T2, T3, T4, T5, T6) O,
) (*State[O], Unsubscribe, error) {
	c := &combined7[T0, T1, T2, T3, T4, T5, T6, O]{
		out:  NewState[O](),
		pick: pick,
		left: 7,
	}
	subs := &Subscriptions{}
	stop0, err := s0.Subscribe(Observer[T0]{
		Next: func(v T0) {
			c.mu.Lock()
			c.has0 = true
			c.arg0 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop0)
	stop1, err := s1.Subscribe(Observer[T1]{
		Next: func(v T1) {
			c.mu.Lock()
			c.has1 = true
			c.arg1 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop1)
	stop2, err := s2.Subscribe(Observer[T2]{
		Next: func(v T2) {
			c.mu.Lock()
			c.has2 = true
			c.arg2 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop2)
	stop3, err := s3.Subscribe(Observer[T3]{
		Next: func(v T3) {
			c.mu.Lock()
			c.has3 = true
			c.arg3 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop3)
	stop4, err := s4.Subscribe(Observer[T4]{
		Next: func(v T4) {
			c.mu.Lock()
			c.has4 = true
			c.arg4 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop4)
	stop5, err := s5.Subscribe(Observer[T5]{
		Next: func(v T5) {
			c.mu.Lock()
			c.has5 = true
			c.arg5 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop5)
	stop6, err := s6.Subscribe(Observer[T6]{
		Next: func(v T6) {
			c.mu.Lock()
			c.has6 = true
			c.arg6 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop6)
	return c.out, subs.Clear, nil
}

type combined8[T0, T1, T2, T3, T4, T5, T6, T7, O comparable] struct {
	out  *State[O]
	pick func(T0, T1, T2, T3, T4, T5, T6, T7) O
	mu   sync.Mutex
	left int
	has0 bool
	arg0 T0
	has1 bool
	arg1 T1
	has2 bool
	arg2 T2
	has3 bool
	arg3 T3
	has4 bool
	arg4 T4
	has5 bool
	arg5 T5
	has6 bool
	arg6 T6
	has7 bool
	arg7 T7
}

func (c *combined8[T0, T1, T2, T3, T4, T5, T6, T7, O]) publish() {
	c.mu.Lock()
	if !(c.has0 && c.has1 && c.has2 && c.has3 && c.has4 && c.has5 && c.has6 && c.has7) {
		c.mu.Unlock()
		return
	}
	arg0 := c.arg0
	arg1 := c.arg1
	arg2 := c.arg2
	arg3 := c.arg3
	arg4 := c.arg4
	arg5 := c.arg5
	arg6 := c.arg6
	arg7 := c.arg7
	c.mu.Unlock()
	_ = c.out.Next(c.pick(
		arg0,
		arg1,
		arg2,
		arg3,
		arg4,
		arg5,
		arg6,
		arg7,
	))
}

func (c *combined8[T0, T1, T2, T3, T4, T5, T6, T7, O]) sourceFailed(reason error) {
	_ = c.out.Error(reason)
}

func (c *combined8[T0, T1, T2, T3, T4, T5, T6, T7, O]) sourceDone() {
	c.mu.Lock()
	c.left--
	last := c.left == 0
	c.mu.Unlock()
	if last {
		_ = c.out.Complete()
	}
}

func Combine8[T0, T1, T2, T3, T4, T5, T6, T7, O comparable](
	s0 *State[T0],
	s1 *State[T1],
	s2 *State[T2],
	s3 *State[T3],
	s4 *State[T4],
	s5 *State[T5],
	s6 *State[T6],
	s7 *State[T7],
	pick func(T0, T1, T2, T3, T4, T5, T6, T7) O,
) (*State[O], Unsubscribe, error) {
	c := &combined8[T0, T1, T2, T3, T4, T5, T6, T7, O]{
		out:  NewState[O](),
		pick: pick,
		left: 8,
	}
	subs := &Subscriptions{}
	stop0, err := s0.Subscribe(Observer[T0]{
		Next: func(v T0) {
			c.mu.Lock()
			c.has0 = true
			c.arg0 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop0)
	stop1, err := s1.Subscribe(Observer[T1]{
		Next: func(v T1) {
			c.mu.Lock()
			c.has1 = true
			c.arg1 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop1)
	stop2, err := s2.Subscribe(Observer[T2]{
		Next: func(v T2) {
			c.mu.Lock()
			c.has2 = true
			c.arg2 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop2)
	stop3, err := s3.Subscribe(Observer[T3]{
		Next: func(v T3) {
			c.mu.Lock()
			c.has3 = true
			c.arg3 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop3)
	stop4, err := s4.Subscribe(Observer[T4]{
		Next: func(v T4) {
			c.mu.Lock()
			c.has4 = true
			c.arg4 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop4)
	stop5, err := s5.Subscribe(Observer[T5]{
		Next: func(v T5) {
			c.mu.Lock()
			c.has5 = true
			c.arg5 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop5)
	stop6, err := s6.Subscribe(Observer[T6]{
		Next: func(v T6) {
			c.mu.Lock()
			c.has6 = true
			c.arg6 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop6)
	stop7, err := s7.Subscribe(Observer[T7]{
		Next: func(v T7) {
			c.mu.Lock()
			c.has7 = true
			c.arg7 = v
			c.mu.Unlock()
			c.publish()
		},
		Error:    c.sourceFailed,
		Complete: c.sourceDone,
	})
	if err != nil {
		subs.Clear()
		return nil, nil, err
	}
	subs.Add(stop7)
	return c.out, subs.Clear, nil
}
