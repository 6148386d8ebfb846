package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{name: "Valid timestamp", input: "2024-01-15T10:30:00"},
		{name: "Date only", input: "2024-01-15", expectErr: true},
		{name: "Space separator", input: "2024-01-15 10:30:00", expectErr: true},
		{name: "Zone suffix", input: "2024-01-15T10:30:00Z", expectErr: true},
		{name: "Fractional seconds", input: "2024-01-15T10:30:00.5", expectErr: true},
		{name: "Single digit hour", input: "2024-01-15T9:30:00", expectErr: true},
		{name: "Out of range month", input: "2024-13-15T10:30:00", expectErr: true},
		{name: "Empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.input)

			if tt.expectErr {
				require.Error(t, err)
				de, ok := AsDomainError(err)
				require.True(t, ok)
				assert.Equal(t, ErrCodeInvalidDate, de.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
			assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), ts.Std())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", d.String())

	for _, bad := range []string{"2024-6-1", "2024-06-01T00:00:00", "06/01/2024"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimestamp_JSON(t *testing.T) {
	ts := MustTimestamp("2024-01-15T10:30:00")

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15T10:30:00"`, string(data))

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ts.String(), decoded.String())

	err = json.Unmarshal([]byte(`"2024-01-15"`), &decoded)
	require.Error(t, err)
	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInvalidDate, de.Code)

	err = json.Unmarshal([]byte(`12345`), &decoded)
	require.Error(t, err)
}

func TestDate_JSONPointerNull(t *testing.T) {
	var holder struct {
		Expiry *Date `json:"expiry_date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"expiry_date":null}`), &holder))
	assert.Nil(t, holder.Expiry)

	require.NoError(t, json.Unmarshal([]byte(`{"expiry_date":"2024-06-01"}`), &holder))
	require.NotNil(t, holder.Expiry)
	assert.Equal(t, "2024-06-01", holder.Expiry.String())

	data, err := json.Marshal(holder)
	require.NoError(t, err)
	assert.JSONEq(t, `{"expiry_date":"2024-06-01"}`, string(data))
}

func TestOptional_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		expectSet bool
		expectNil bool
		expected  string
	}{
		{name: "Absent key", payload: `{}`, expectSet: false, expectNil: true},
		{name: "Explicit null", payload: `{"notes":null}`, expectSet: true, expectNil: true},
		{name: "Value", payload: `{"notes":"fragile"}`, expectSet: true, expected: "fragile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var holder struct {
				Notes Optional[string] `json:"notes"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &holder))

			assert.Equal(t, tt.expectSet, holder.Notes.Set)
			if tt.expectNil {
				assert.Nil(t, holder.Notes.Value)
			} else {
				require.NotNil(t, holder.Notes.Value)
				assert.Equal(t, tt.expected, *holder.Notes.Value)
			}
		})
	}
}

func TestOptional_WrongType(t *testing.T) {
	var holder struct {
		Qty Optional[int] `json:"quantity_added"`
	}
	err := json.Unmarshal([]byte(`{"quantity_added":"ten"}`), &holder)
	assert.Error(t, err)
}

func TestStockPatch_DateFields(t *testing.T) {
	var patch StockPatch
	err := json.Unmarshal([]byte(`{"intake_date":"2024-02-01T08:00:00","expiry_date":null}`), &patch)
	require.NoError(t, err)

	require.NotNil(t, patch.IntakeDate.Value)
	assert.Equal(t, "2024-02-01T08:00:00", patch.IntakeDate.Value.String())
	assert.True(t, patch.ExpiryDate.IsNull())
	assert.False(t, patch.Notes.Set)
	assert.False(t, patch.Empty())

	err = json.Unmarshal([]byte(`{"intake_date":"2024-02-01"}`), &StockPatch{})
	require.Error(t, err)
}

func TestPatch_Validate(t *testing.T) {
	tests := []struct {
		name      string
		validate  func() error
		expectErr string
	}{
		{
			name: "Product optional null allowed",
			validate: func() error {
				p := ProductPatch{Description: Null[string]()}
				return p.Validate()
			},
		},
		{
			name: "Product required null rejected",
			validate: func() error {
				p := ProductPatch{ProductName: Null[string](), UnitPrice: Null[float64]()}
				return p.Validate()
			},
			expectErr: "product_name, unit_price",
		},
		{
			name: "Stock required null rejected",
			validate: func() error {
				p := StockPatch{IntakeDate: Null[Timestamp]()}
				return p.Validate()
			},
			expectErr: "intake_date",
		},
		{
			name: "Sale values accepted",
			validate: func() error {
				p := SalePatch{TotalPrice: Some(12.5), Notes: Null[string]()}
				return p.Validate()
			},
		},
		{
			name: "Sale required null rejected",
			validate: func() error {
				p := SalePatch{QuantitySold: Null[int]()}
				return p.Validate()
			},
			expectErr: "quantity_sold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()

			if tt.expectErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
			de, ok := AsDomainError(err)
			require.True(t, ok)
			assert.Equal(t, ErrCodeMissingField, de.Code)
		})
	}
}

func TestPatch_Empty(t *testing.T) {
	assert.True(t, (&ProductPatch{}).Empty())
	assert.True(t, (&StockPatch{}).Empty())
	assert.True(t, (&SalePatch{}).Empty())
	assert.False(t, (&SalePatch{Notes: Null[string]()}).Empty())
}

func TestProduct_JSONShape(t *testing.T) {
	p := Product{ID: 1, ProductName: "Widget", UnitPrice: 9.99}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"product_name":"Widget","description":null,"category":null,"unit_price":9.99,"units_per_box":null}`,
		string(data))
}
