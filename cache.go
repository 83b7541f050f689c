package main

import (
	"encoding/gob"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"sync"
)

const (
	_filePerm  = 0644
	_dirPerm   = 0755
	_indexName = "Index"
)

// _InputCache keeps downloaded puzzle inputs on disk. An index records the
// size and checksum of every stored input so a truncated or edited file is
// treated as missing.
type _InputCache struct {
	mu    sync.Mutex
	dir   string
	index map[int]_InputInfo
}

type _InputInfo struct {
	Size     int64
	HashCode uint32
}

func _openInputCache(dir string) (c *_InputCache, err error) {
	if err = os.MkdirAll(dir, _dirPerm); err != nil {
		return
	}
	c = &_InputCache{dir: dir, index: make(map[int]_InputInfo)}
	c.loadIndex()
	return
}

// loadIndex prefers an IndexNew left by an interrupted sync, but only when
// it decodes. An unreadable index leaves the cache empty.
func (c *_InputCache) loadIndex() {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := filepath.Join(c.dir, _indexName)
	index, err := _readIndex(name + "New")
	if err == nil {
		if err := os.Rename(name+"New", name); err != nil {
			log.Warningf("input cache: %v", err)
		}
		c.index = index
		return
	}
	if !os.IsNotExist(err) {
		log.Warningf("input cache: discarding %vNew: %v", _indexName, err)
		os.Remove(name + "New")
	}

	index, err = _readIndex(name)
	switch {
	case err == nil:
		c.index = index
	case !os.IsNotExist(err):
		log.Warningf("input cache: ignoring %v: %v", _indexName, err)
	}
}

func _readIndex(name string) (index map[int]_InputInfo, err error) {
	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer file.Close()
	err = gob.NewDecoder(file).Decode(&index)
	if err == nil && index == nil {
		index = make(map[int]_InputInfo)
	}
	return
}

func (c *_InputCache) syncIndex() (err error) {
	name := filepath.Join(c.dir, _indexName)
	file, err := os.OpenFile(name+"New", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, _filePerm)
	if err != nil {
		return
	}
	err = gob.NewEncoder(file).Encode(c.index)
	if err1 := file.Close(); err == nil {
		err = err1
	}
	if err != nil {
		return
	}
	return os.Rename(name+"New", name)
}

func (c *_InputCache) path(day int) string {
	return filepath.Join(c.dir, fmt.Sprintf("day%v.txt", day))
}

// Load returns the cached input for day. Missing or corrupt entries report
// an error matching os.ErrNotExist.
func (c *_InputCache) Load(day int) ([]byte, error) {
	c.mu.Lock()
	info, ok := c.index[day]
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("input for day %v: %w", day, os.ErrNotExist)
	}

	data, err := os.ReadFile(c.path(day))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != info.Size || crc32.ChecksumIEEE(data) != info.HashCode {
		log.Warningf("cached input for day %v fails its checksum", day)
		return nil, fmt.Errorf("input for day %v is corrupt: %w", day, os.ErrNotExist)
	}
	return data, nil
}

func (c *_InputCache) Store(day int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.WriteFile(c.path(day), data, _filePerm); err != nil {
		return err
	}
	c.index[day] = _InputInfo{
		Size:     int64(len(data)),
		HashCode: crc32.ChecksumIEEE(data),
	}
	return c.syncIndex()
}
