package lib

import (
	"fmt"
	"path/filepath"

	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"
)

var partsBucket = []byte("parts")

type PartDB struct {
	root  string
	db    *bolt.DB
	index bleve.Index
}

/*
	the subset of part fields worth full-text searching
*/
type partDocument struct {
	MPN         string
	Value       string
	Footprint   string
	Description string
	Series      string
}

/*
	Create or open a part database at root
*/
func NewPartDB(root string) (*PartDB, error) {
	db, err := bolt.Open(filepath.Join(root, "symgen.db"), 0666, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(partsBucket)
		return err
	})
	if err != nil {
		return nil, err
	}

	var index bleve.Index
	ipath := filepath.Join(root, "symgen.index")
	if Exists(ipath) {
		index, err = bleve.Open(ipath)
	} else {
		index, err = bleve.New(ipath, bleve.NewIndexMapping())
	}
	if err != nil {
		return nil, err
	}

	return &PartDB{
		root:  root,
		db:    db,
		index: index,
	}, nil
}

func (l *PartDB) Close() error {
	if err := l.index.Close(); err != nil {
		return err
	}

	return l.db.Close()
}

/*
	Import a part list, keyed by MPN. Existing entries are overwritten,
	so re-importing a regenerated CSV refreshes the database in place.
*/
func (l *PartDB) Import(parts []*PartInfo) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(partsBucket)
		for _, part := range parts {
			bytes, err := Marshal(part)
			if err != nil {
				return err
			}

			if err := bucket.Put([]byte(part.MPN), bytes); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	batch := l.index.NewBatch()
	for _, part := range parts {
		err := batch.Index(part.MPN, partDocument{
			MPN:         part.MPN,
			Value:       part.Value,
			Footprint:   part.Footprint,
			Description: part.Description,
			Series:      part.Series,
		})
		if err != nil {
			return err
		}
	}

	return l.index.Batch(batch)
}

func (l *PartDB) Get(mpn string) (*PartInfo, error) {
	part := &PartInfo{}
	err := l.db.View(func(tx *bolt.Tx) error {
		bytes := tx.Bucket(partsBucket).Get([]byte(mpn))
		if bytes == nil {
			return fmt.Errorf("part not found: %s", mpn)
		}

		return Unmarshal(bytes, part)
	})
	if err != nil {
		return nil, err
	}

	return part, nil
}

/*
	Find parts matching a search string
*/
func (l *PartDB) Find(text string) ([]*PartInfo, error) {
	query := bleve.NewQueryStringQuery(text)
	request := bleve.NewSearchRequest(query)
	request.Size = 50

	result, err := l.index.Search(request)
	if err != nil {
		return nil, err
	}

	parts := []*PartInfo{}
	for _, hit := range result.Hits {
		part, err := l.Get(hit.ID)
		if err != nil {
			continue
		}

		parts = append(parts, part)
	}

	return parts, nil
}

/*
	Every part in the database, in MPN order
*/
func (l *PartDB) All() ([]*PartInfo, error) {
	parts := []*PartInfo{}
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(partsBucket).ForEach(func(k, v []byte) error {
			part := &PartInfo{}
			if err := Unmarshal(v, part); err != nil {
				return err
			}

			parts = append(parts, part)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return parts, nil
}

func (l *PartDB) Count() (int, error) {
	count := 0
	err := l.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(partsBucket).Stats().KeyN
		return nil
	})

	return count, err
}
