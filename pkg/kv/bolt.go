package kv

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const defaultBoltBucket = "parcelshare"

type Bolt struct {
	db     *bbolt.DB
	bucket []byte
}

func OpenBolt(path string, bucket string) (*Bolt, error) {
	if bucket == "" {
		bucket = defaultBoltBucket
	}

	db, err := bbolt.Open(path, fileMode, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt database %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bolt bucket %s: %w", bucket, err)
	}

	return &Bolt{db: db, bucket: []byte(bucket)}, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) Get(_ context.Context, key string) (string, error) {
	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket(b.bucket)
		if bkt == nil {
			return ErrNotFound
		}

		v := bkt.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}

		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return "", err
	}

	return string(value), nil
}

func (b *Bolt) Set(_ context.Context, key, value string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists(b.bucket)
		if err != nil {
			return err
		}

		return bkt.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("bolt put %s: %w", key, err)
	}

	return nil
}

func (b *Bolt) Remove(_ context.Context, keys ...string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket(b.bucket)
		if bkt == nil {
			return nil
		}

		for _, key := range keys {
			if err := bkt.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bolt delete: %w", err)
	}

	return nil
}
