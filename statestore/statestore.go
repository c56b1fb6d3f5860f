// Package statestore is a read mostly snapshot of storage entries addressed by
// derived storage keys. It exists so derived keys can be resolved against
// exported state. Values are opaque bytes; decoding them is the caller's job.
//
// It is not a state store implementation: there is no trie, no root and no
// history, only a single bolt bucket of key to value.
package statestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/boltdb/bolt"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-storagekey/anchorfilter"
	"github.com/forestrie/go-storagekey/storagekey"
)

const (
	DefaultBucket         = "storage"
	DefaultOpenTimeout    = 5 * time.Second
	DefaultFilterCapacity = 4096

	// filterBucket holds one anchor filter per storage bucket, keyed by the
	// storage bucket name.
	filterBucket = "anchorfilter"
)

var (
	ErrNotFound       = errors.New("statestore: key not found")
	ErrBucketNotFound = errors.New("statestore: bucket not found")
	ErrReadOnly       = errors.New("statestore: snapshot is read only")
	ErrReservedBucket = errors.New("statestore: bucket name is reserved")
)

type Options struct {
	Bucket      string
	ReadOnly    bool
	OpenTimeout time.Duration
	FileMode    os.FileMode
	// FilterCapacity sizes the anchor filter created with a new bucket. Zero
	// disables the filter for new buckets.
	FilterCapacity uint64
}

// Option is a generic option type used for snapshot implementations.
// Implementations type assert to the Options target record and if that fails
// the expectation they ignore the option.
type Option func(any)

func WithBucket(name string) Option {
	return func(o any) {
		if so, ok := o.(*Options); ok {
			so.Bucket = name
		}
	}
}

func WithReadOnly() Option {
	return func(o any) {
		if so, ok := o.(*Options); ok {
			so.ReadOnly = true
		}
	}
}

func WithFilterCapacity(items uint64) Option {
	return func(o any) {
		if so, ok := o.(*Options); ok {
			so.FilterCapacity = items
		}
	}
}

func WithOpenTimeout(d time.Duration) Option {
	return func(o any) {
		if so, ok := o.(*Options); ok {
			so.OpenTimeout = d
		}
	}
}

type Snapshot struct {
	log    logger.Logger
	db     *bolt.DB
	bucket []byte
	opts   Options
}

// Open opens, or creates unless read only, the snapshot at path.
func Open(log logger.Logger, path string, opts ...Option) (*Snapshot, error) {
	o := Options{
		Bucket:         DefaultBucket,
		OpenTimeout:    DefaultOpenTimeout,
		FileMode:       0644,
		FilterCapacity: DefaultFilterCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Bucket == filterBucket {
		return nil, fmt.Errorf("%w: %s", ErrReservedBucket, o.Bucket)
	}

	db, err := bolt.Open(path, o.FileMode, &bolt.Options{Timeout: o.OpenTimeout, ReadOnly: o.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("statestore: failed to open %s: %w", path, err)
	}

	s := &Snapshot{log: log, db: db, bucket: []byte(o.Bucket), opts: o}
	if !o.ReadOnly {
		err = db.Update(s.create)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	log.Infof("opened snapshot %s bucket %s read only %v", path, o.Bucket, o.ReadOnly)
	return s, nil
}

// create makes the storage bucket and, when it is new, its anchor filter.
func (s *Snapshot) create(tx *bolt.Tx) error {
	if tx.Bucket(s.bucket) != nil {
		return nil
	}
	if _, err := tx.CreateBucket(s.bucket); err != nil {
		return err
	}
	if s.opts.FilterCapacity == 0 {
		return nil
	}
	region, err := anchorfilter.New(s.opts.FilterCapacity, anchorfilter.DefaultBitsPerItem, anchorfilter.DefaultK)
	if err != nil {
		return err
	}
	fb, err := tx.CreateBucketIfNotExists([]byte(filterBucket))
	if err != nil {
		return err
	}
	return fb.Put(s.bucket, region)
}

// filter returns the anchor filter region of the storage bucket, or nil if it
// has none. The region is only valid for the life of tx.
func (s *Snapshot) filter(tx *bolt.Tx) []byte {
	fb := tx.Bucket([]byte(filterBucket))
	if fb == nil {
		return nil
	}
	return fb.Get(s.bucket)
}

// absent reports whether the filter rules out every key under key's anchor.
func (s *Snapshot) absent(tx *bolt.Tx, key storagekey.Key) (bool, error) {
	region := s.filter(tx)
	if region == nil || len(key) < storagekey.AnchorBytes {
		return false, nil
	}
	maybe, err := anchorfilter.MaybeContainsV1(region, key.Anchor())
	if err != nil {
		return false, err
	}
	return !maybe, nil
}

func (s *Snapshot) Close() error {
	return s.db.Close()
}

// Put stores value under key, replacing any previous value.
func (s *Snapshot) Put(ctx context.Context, key storagekey.Key, value []byte) error {
	return s.PutAll(ctx, []Entry{{Key: key, Value: value}})
}

// Entry is one key and value of the snapshot.
type Entry struct {
	Key   storagekey.Key
	Value []byte
}

// PutAll stores entries in a single transaction.
func (s *Snapshot) PutAll(ctx context.Context, entries []Entry) error {
	if s.opts.ReadOnly {
		return ErrReadOnly
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return ErrBucketNotFound
		}
		// bolt values are read only, the filter is updated on a copy.
		var region []byte
		if r := s.filter(tx); r != nil {
			region = append([]byte{}, r...)
		}
		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := b.Put(e.Key, e.Value); err != nil {
				return err
			}
			if region == nil || len(e.Key) < storagekey.AnchorBytes {
				continue
			}
			if err := anchorfilter.InsertV1(region, e.Key.Anchor()); err != nil {
				return err
			}
		}
		if region == nil {
			return nil
		}
		return tx.Bucket([]byte(filterBucket)).Put(s.bucket, region)
	})
}

// Get returns a copy of the value stored under key.
func (s *Snapshot) Get(ctx context.Context, key storagekey.Key) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return ErrBucketNotFound
		}
		absent, err := s.absent(tx, key)
		if err != nil {
			return err
		}
		var v []byte
		if !absent {
			v = b.Get(key)
		}
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, key.Hex())
		}
		// bolt values are only valid for the life of the transaction.
		value = append([]byte{}, v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// IteratePrefix calls fn, in key order, for every entry whose key starts with
// prefix. Keys built with identity hashed parameters therefore iterate in
// parameter byte order. Returning an error from fn stops the iteration.
func (s *Snapshot) IteratePrefix(
	ctx context.Context, prefix storagekey.Key, fn func(key storagekey.Key, value []byte) error,
) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return ErrBucketNotFound
		}
		if absent, err := s.absent(tx, prefix); err != nil || absent {
			return err
		}
		c := b.Cursor()
		for k, v := c.Seek(prefix); k != nil && storagekey.Key(k).HasPrefix(prefix); k, v = c.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(storagekey.Key(k).Clone(), append([]byte{}, v...)); err != nil {
				return err
			}
		}
		return nil
	})
}
