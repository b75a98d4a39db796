// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later
package objectstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystem_PutGetRoundTrip(t *testing.T) {
	store, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)

	id, err := store.Put([]byte("hello world"))
	require.NoError(t, err)
	assert.Len(t, id, 64)

	data, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	has, err := store.Has(id)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestFilesystem_PutIsIdempotent(t *testing.T) {
	store, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)

	id1, err := store.Put([]byte("same content"))
	require.NoError(t, err)
	id2, err := store.Put([]byte("same content"))
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestFilesystem_GetMissing(t *testing.T) {
	store, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)
	_, err = store.Get(ID([]byte("never written")))
	require.Error(t, err)
}

func TestCopy_StreamsIntoStore(t *testing.T) {
	store, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)

	id, err := Copy(store, strings.NewReader("streamed content"))
	require.NoError(t, err)

	data, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "streamed content", string(data))
}
