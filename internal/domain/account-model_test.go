package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountSettingsScan(t *testing.T) {
	t.Parallel()

	t.Run("null column yields defaults with empty preferences", func(t *testing.T) {
		var s AccountSettings
		require.NoError(t, s.Scan(nil))
		assert.NotNil(t, s.FlowerPreferences)
		assert.Empty(t, s.FlowerPreferences)
	})

	t.Run("stored json without preferences still yields empty slice", func(t *testing.T) {
		var s AccountSettings
		require.NoError(t, s.Scan([]byte(`{"emailNotifications":true}`)))
		assert.True(t, s.EmailNotifications)
		assert.NotNil(t, s.FlowerPreferences)
	})

	t.Run("string input", func(t *testing.T) {
		var s AccountSettings
		require.NoError(t, s.Scan(`{"defaultDeliveryTime":"evening","flowerPreferences":["roses"]}`))
		assert.Equal(t, "evening", s.DefaultDeliveryTime)
		assert.Equal(t, []string{"roses"}, s.FlowerPreferences)
	})

	t.Run("unsupported input type", func(t *testing.T) {
		var s AccountSettings
		assert.Error(t, s.Scan(42))
	})
}

func TestAccountSettingsValue(t *testing.T) {
	t.Parallel()

	v, err := AccountSettings{}.Value()
	require.NoError(t, err)

	// nil preference slice must write [] so reads never see null
	raw, ok := v.([]byte)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"flowerPreferences":[]`)
}

func TestAccountJSONHidesPasswordHash(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Account{Email: "rosa@example.com", PasswordHash: "bcrypt-material"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bcrypt-material")
	assert.NotContains(t, string(raw), "password")
}

func TestOrderItemsScan(t *testing.T) {
	t.Parallel()

	var items OrderItems
	require.NoError(t, items.Scan([]byte(`[{"title":"Red bouquet","category":"roses","price":24.99,"quantity":1}]`)))
	require.Len(t, items, 1)
	assert.Equal(t, "roses", items[0].Category)

	require.NoError(t, items.Scan(nil))
	assert.Empty(t, items)
}

func TestOrderItemsSerializeUnderCartKey(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Order{Items: OrderItems{{Title: "Red bouquet"}}})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	_, ok := decoded["cart"]
	assert.True(t, ok)
}
