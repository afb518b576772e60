package remote

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
)

// Open creates a Client backed by diskv using the provided config.
func Open(cfg Config) (Client, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &diskvClient{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type diskvClient struct {
	d        *diskv.Diskv
	basePath string
}

func (c *diskvClient) List(ctx context.Context, collection string) ([]Document, error) {
	encoded := toCollection(collection)
	docs := make([]Document, 0)
	for key := range c.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		if pk.Path[0] != encoded {
			continue
		}
		val, err := c.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "remote: %s: %s\n", key, err)
			continue
		}
		docs = append(docs, Document{ID: pk.FileName, Fields: val})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (c *diskvClient) Create(ctx context.Context, collection string, fields json.RawMessage) (string, error) {
	if !json.Valid(fields) {
		return "", &RemoteError{Op: "create", Collection: collection, Err: errors.New("invalid document body")}
	}
	// Keys split on "-", so ids must not contain one.
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := c.d.Write(toKey(collection, id), fields); err != nil {
		return "", &RemoteError{Op: "create", Collection: collection, Err: err}
	}
	return id, nil
}

// Update merges the partial document into the stored object, field by
// field, matching the hosted store's partial-update semantics.
func (c *diskvClient) Update(ctx context.Context, collection, id string, fields json.RawMessage) error {
	key := toKey(collection, id)
	current, err := c.d.Read(key)
	if err != nil {
		return &RemoteError{Op: "update", Collection: collection, Err: err}
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(current, &doc); err != nil {
		return &RemoteError{Op: "update", Collection: collection, Err: err}
	}
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(fields, &patch); err != nil {
		return &RemoteError{Op: "update", Collection: collection, Err: err}
	}
	for k, v := range patch {
		doc[k] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return &RemoteError{Op: "update", Collection: collection, Err: err}
	}
	if err := c.d.Write(key, merged); err != nil {
		return &RemoteError{Op: "update", Collection: collection, Err: err}
	}
	return nil
}

func (c *diskvClient) Delete(ctx context.Context, collection, id string) error {
	if err := c.d.Erase(toKey(collection, id)); err != nil {
		return &RemoteError{Op: "delete", Collection: collection, Err: err}
	}
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `collection-id`.
func toKey(collection, id string) string {
	return fmt.Sprintf("%s-%s", toCollection(collection), id)
}

func toCollection(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func fromCollection(s string) string {
	collection, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("fromCollection: %s", err)
	}
	return string(collection)
}
