package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyAPIKey, "secret")
	require.NoError(t, err)

	val, ok := store.Get(KeyAPIKey)
	assert.True(t, ok)
	assert.Equal(t, "secret", val)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("string_key", "hello world")
	require.NoError(t, err)

	assert.Equal(t, "hello world", store.GetString("string_key"))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))

	// Wrong type
	err = store.Set("int_key", 42)
	require.NoError(t, err)
	assert.Equal(t, "", store.GetString("int_key"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("int_key", 42)
	require.NoError(t, err)

	assert.Equal(t, 42, store.GetInt("int_key"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))

	// Wrong type
	err = store.Set("string_key", "not an int")
	require.NoError(t, err)
	assert.Equal(t, 0, store.GetInt("string_key"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("float_key", 2.5)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, store.GetFloat("float_key"), 1e-9)
	assert.Zero(t, store.GetFloat("nonexistent"))

	// Integer values widen to float
	store.mu.Lock()
	store.data["int64_key"] = int64(3)
	store.mu.Unlock()
	assert.InDelta(t, 3.0, store.GetFloat("int64_key"), 1e-9)
}

func TestConfigStore_GetBool(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("bool_key", true)
	require.NoError(t, err)
	assert.True(t, store.GetBool("bool_key"))

	assert.False(t, store.GetBool("nonexistent"))

	// Wrong type
	err = store.Set("string_key", "true")
	require.NoError(t, err)
	assert.False(t, store.GetBool("string_key"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store1.Set("key1", "value1"))
	require.NoError(t, store1.Set("key2", 42))
	require.NoError(t, store1.Set("key3", true))

	// New store instance loads from file
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "value1", store2.GetString("key1"))
	assert.Equal(t, 42, store2.GetInt("key2"))
	assert.True(t, store2.GetBool("key3"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("[search]\napi_key = \"k\"\ntimeout_seconds = 45\n\n[history]\nlimit = 25\n")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "k", store.GetString(KeyAPIKey))
	assert.Equal(t, 45, store.GetInt(KeyTimeoutSeconds))
	assert.Equal(t, 25, store.GetInt(KeyHistoryLimit))
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()

	corruptedContent := []byte("this is not valid TOML {{{[[")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), corruptedContent, 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_OverwriteValue(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "original"))
	assert.Equal(t, "original", store.GetString("key"))

	require.NoError(t, store.Set("key", "updated"))
	assert.Equal(t, "updated", store.GetString("key"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_ = store.GetBool(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
