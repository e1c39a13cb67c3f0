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

package ledgerline

import (
	"github.com/sirupsen/logrus"

	"github.com/ledgerline/ledgerline/config"
	"github.com/ledgerline/ledgerline/database"
	"github.com/ledgerline/ledgerline/internal/cache"
)

// Ledgerline is the service layer: payout reconciliation, balance
// aggregation and the single-entity paths, all on top of one datasource.
type Ledgerline struct {
	datasource database.IDataSource
	cache      cache.Cache
}

// NewLedgerline initializes the service layer with the provided datasource.
// The balance cache is optional: when redis is not configured or not
// reachable the service runs without it.
func NewLedgerline(db database.IDataSource) (*Ledgerline, error) {
	balanceCache := newBalanceCache()
	return &Ledgerline{datasource: db, cache: balanceCache}, nil
}

func newBalanceCache() cache.Cache {
	cfg, err := config.Fetch()
	if err != nil || cfg.Redis.Dns == "" {
		return nil
	}
	c, err := cache.NewCache()
	if err != nil {
		logrus.Warnf("balance cache disabled: %v", err)
		return nil
	}
	return c
}
