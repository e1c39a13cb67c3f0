/*
Copyright 2025 Ledgerline Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ledgerline/ledgerline/config"
	"github.com/stretchr/testify/assert"
)

func newTestCache(t *testing.T) Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	config.MockConfig(&config.Configuration{
		Redis: config.RedisConfig{Dns: mr.Addr()},
	})
	c, err := NewCache()
	assert.NoError(t, err)
	return c
}

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	setValue := map[string]string{"hello": "world"}
	err := c.Set(ctx, "testKey", setValue, 10*time.Minute)
	assert.NoError(t, err)

	var getValue map[string]string
	err = c.Get(ctx, "testKey", &getValue)
	assert.NoError(t, err)
	assert.Equal(t, setValue, getValue)
}

func TestGetMissingKey(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	var value string
	err := c.Get(ctx, "noSuchKey", &value)
	assert.NoError(t, err)
	assert.Empty(t, value)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	err := c.Set(ctx, "testKey", "testValue", 10*time.Minute)
	assert.NoError(t, err)

	err = c.Delete(ctx, "testKey")
	assert.NoError(t, err)

	var value string
	err = c.Get(ctx, "testKey", &value)
	assert.NoError(t, err)
	assert.Empty(t, value)
}
