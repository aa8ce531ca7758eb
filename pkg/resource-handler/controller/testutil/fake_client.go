// Package testutil provides helpers for controller tests: a fake client
// wrapper with configurable failure injection and go-cmp options for
// comparing Kubernetes objects.
package testutil

import (
	"context"
	"errors"
	"sync"

	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Sentinel errors for failure injection.
var (
	ErrInjected        = errors.New("injected failure")
	ErrPermissionError = errors.New("injected permission denied")
	ErrNetworkTimeout  = errors.New("injected network timeout")
)

// FailureConfig declares which client operations should fail. A nil hook
// means the operation always succeeds. Hooks returning nil pass the call
// through to the underlying client.
type FailureConfig struct {
	OnGet          func(key client.ObjectKey) error
	OnList         func(list client.ObjectList) error
	OnCreate       func(obj client.Object) error
	OnUpdate       func(obj client.Object) error
	OnDelete       func(obj client.Object) error
	OnStatusUpdate func(obj client.Object) error
}

// FailOnKeyName returns an OnGet hook failing lookups for the given name.
func FailOnKeyName(name string, err error) func(client.ObjectKey) error {
	return func(key client.ObjectKey) error {
		if key.Name == name {
			return err
		}
		return nil
	}
}

// FailOnNamespacedKeyName returns an OnGet hook failing lookups for the
// given name in the given namespace.
func FailOnNamespacedKeyName(name, namespace string, err error) func(client.ObjectKey) error {
	return func(key client.ObjectKey) error {
		if key.Name == name && key.Namespace == namespace {
			return err
		}
		return nil
	}
}

// FailKeyAfterNCalls returns an OnGet hook that lets the first n calls
// succeed and fails every call after that.
func FailKeyAfterNCalls(n int, err error) func(client.ObjectKey) error {
	var mu sync.Mutex
	calls := 0
	return func(client.ObjectKey) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls > n {
			return err
		}
		return nil
	}
}

// FailOnObjectName returns an object hook failing writes for the given name.
func FailOnObjectName(name string, err error) func(client.Object) error {
	return func(obj client.Object) error {
		if obj.GetName() == name {
			return err
		}
		return nil
	}
}

// fakeClientWithFailures wraps a client and injects configured failures.
type fakeClientWithFailures struct {
	client.Client
	config *FailureConfig
}

// NewFakeClientWithFailures wraps base with failure injection. A nil config
// returns a client that behaves exactly like base.
func NewFakeClientWithFailures(base client.Client, config *FailureConfig) client.Client {
	return &fakeClientWithFailures{Client: base, config: config}
}

func (c *fakeClientWithFailures) Get(ctx context.Context, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
	if c.config != nil && c.config.OnGet != nil {
		if err := c.config.OnGet(key); err != nil {
			return err
		}
	}
	return c.Client.Get(ctx, key, obj, opts...)
}

func (c *fakeClientWithFailures) List(ctx context.Context, list client.ObjectList, opts ...client.ListOption) error {
	if c.config != nil && c.config.OnList != nil {
		if err := c.config.OnList(list); err != nil {
			return err
		}
	}
	return c.Client.List(ctx, list, opts...)
}

func (c *fakeClientWithFailures) Create(ctx context.Context, obj client.Object, opts ...client.CreateOption) error {
	if c.config != nil && c.config.OnCreate != nil {
		if err := c.config.OnCreate(obj); err != nil {
			return err
		}
	}
	return c.Client.Create(ctx, obj, opts...)
}

func (c *fakeClientWithFailures) Update(ctx context.Context, obj client.Object, opts ...client.UpdateOption) error {
	if c.config != nil && c.config.OnUpdate != nil {
		if err := c.config.OnUpdate(obj); err != nil {
			return err
		}
	}
	return c.Client.Update(ctx, obj, opts...)
}

func (c *fakeClientWithFailures) Delete(ctx context.Context, obj client.Object, opts ...client.DeleteOption) error {
	if c.config != nil && c.config.OnDelete != nil {
		if err := c.config.OnDelete(obj); err != nil {
			return err
		}
	}
	return c.Client.Delete(ctx, obj, opts...)
}

func (c *fakeClientWithFailures) Status() client.SubResourceWriter {
	return &failingStatusWriter{
		SubResourceWriter: c.Client.Status(),
		config:            c.config,
	}
}

type failingStatusWriter struct {
	client.SubResourceWriter
	config *FailureConfig
}

func (w *failingStatusWriter) Update(ctx context.Context, obj client.Object, opts ...client.SubResourceUpdateOption) error {
	if w.config != nil && w.config.OnStatusUpdate != nil {
		if err := w.config.OnStatusUpdate(obj); err != nil {
			return err
		}
	}
	return w.SubResourceWriter.Update(ctx, obj, opts...)
}
