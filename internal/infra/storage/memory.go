package storage

import (
	"context"
	"sync"
)

// Memory keeps objects in a map. It backs local runs without S3 credentials
// and the tests.
type Memory struct {
	mu      sync.Mutex
	base    string
	objects map[string]Object

	// FailOn makes Put fail for the listed keys.
	FailOn map[string]error
}

func NewMemory(base string) *Memory {
	return &Memory{
		base:    base,
		objects: make(map[string]Object),
		FailOn:  make(map[string]error),
	}
}

func (m *Memory) Put(_ context.Context, obj Object) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailOn[obj.Key]; ok {
		return "", err
	}

	id := obj.Bucket + "/" + obj.Key
	if _, ok := m.objects[id]; ok && !obj.Upsert {
		return "", ErrObjectExists
	}
	m.objects[id] = obj
	return PublicURL(m.base, obj.Bucket, obj.Key), nil
}

func (m *Memory) Delete(_ context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects, bucket+"/"+key)
	return nil
}

func (m *Memory) Get(bucket, key string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[bucket+"/"+key]
	return obj, ok
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
