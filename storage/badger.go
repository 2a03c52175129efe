package storage

import (
	"sync"
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/VictoriaMetrics/fastcache"
	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
)

type BadgerStore struct {
	custom      *config.Custom
	registersDB *badger.DB
	cache       *fastcache.Cache
	mutex       sync.Mutex
	closing     chan struct{}
}

func NewBadgerStore(custom *config.Custom, dir string) (*BadgerStore, error) {
	if custom == nil {
		custom = config.Default()
	}
	closing := make(chan struct{})
	registersDB, err := openDB(dir+"/registers", true, custom, closing)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{
		custom:      custom,
		registersDB: registersDB,
		cache:       fastcache.New(custom.Storage.MemoryCacheSize * 1024 * 1024),
		closing:     closing,
	}, nil
}

func (s *BadgerStore) Close() error {
	select {
	case <-s.closing:
		return nil
	default:
		close(s.closing)
	}
	s.cache.Reset()
	return s.registersDB.Close()
}

func openDB(dir string, sync bool, custom *config.Custom, closing chan struct{}) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	opts = opts.WithSyncWrites(sync)
	opts = opts.WithCompression(options.None)
	opts = opts.WithBlockCacheSize(0)
	opts = opts.WithIndexCacheSize(0)
	opts = opts.WithLoggingLevel(badger.WARNING)
	opts = opts.WithBaseLevelSize(16 << 20)
	opts = opts.WithValueLogFileSize(64 << 20)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	if custom.Storage.ValueLogGC {
		go valueLogGC(db, closing)
	}

	return db, nil
}

func valueLogGC(db *badger.DB, closing chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-closing:
			return
		case <-ticker.C:
		}
		lsm, vlog := db.Size()
		logger.Verbosef("Badger LSM %d VLOG %d\n", lsm, vlog)
		if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
			err := db.RunValueLogGC(0.5)
			logger.Verbosef("Badger RunValueLogGC %v\n", err)
		}
	}
}
