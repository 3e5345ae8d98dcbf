package api

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordValidation(t *testing.T) {
	t.Parallel()

	base := RegisterUserRequest{
		Title: "Mr",
		Name:  "John Doe",
		Phone: "9876543210",
		Email: "john@example.com",
	}

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid password", password: "Abcd@123", valid: true},
		{name: "valid at max length", password: "Abcd@123Efgh#45", valid: true},
		{name: "too short", password: "Ab@1", valid: false},
		{name: "too long", password: "Abcd@123Efgh#456", valid: false},
		{name: "missing uppercase", password: "abcd@123", valid: false},
		{name: "missing lowercase", password: "ABCD@123", valid: false},
		{name: "missing digit", password: "Abcd@efg", valid: false},
		{name: "missing special", password: "Abcd1234", valid: false},
		{name: "disallowed character", password: "Abcd@12 3", valid: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := base
			req.Password = tc.password

			fields := validateStruct(&req)
			if tc.valid {
				assert.Nil(t, fields)
			} else {
				require.NotNil(t, fields)
				assert.Contains(t, fields, "password")
			}
		})
	}
}

func TestPhoneValidation(t *testing.T) {
	t.Parallel()

	base := RegisterUserRequest{
		Title:    "Mrs",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "Abcd@123",
	}

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "valid starting with 9", phone: "9876543210", valid: true},
		{name: "valid starting with 6", phone: "6123456789", valid: true},
		{name: "starts below 6", phone: "1234567890", valid: false},
		{name: "too short", phone: "987654321", valid: false},
		{name: "too long", phone: "98765432101", valid: false},
		{name: "non numeric", phone: "98765abcde", valid: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := base
			req.Phone = tc.phone

			fields := validateStruct(&req)
			if tc.valid {
				assert.Nil(t, fields)
			} else {
				require.NotNil(t, fields)
				assert.Contains(t, fields, "phone")
			}
		})
	}
}

func TestISBNValidation(t *testing.T) {
	t.Parallel()

	base := CreateBookRequest{
		Title:      "Learning Go",
		Excerpt:    "a practical introduction",
		UserID:     "507f1f77bcf86cd799439011",
		Category:   "programming",
		ReleasedAt: "2021-06-01",
	}

	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{name: "13 digits with dashes", isbn: "978-93-5019-561-8", valid: true},
		{name: "13 digits plain", isbn: "9789350195618", valid: true},
		{name: "10 digits with dashes", isbn: "0-306-40615-2", valid: true},
		{name: "12 digits", isbn: "978935019561", valid: false},
		{name: "letters", isbn: "978-93-5019-56X-8", valid: false},
		{name: "empty", isbn: "", valid: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := base
			req.ISBN = tc.isbn

			fields := validateStruct(&req)
			if tc.valid {
				assert.Nil(t, fields)
			} else {
				require.NotNil(t, fields)
				assert.Contains(t, fields, "ISBN")
			}
		})
	}
}

func TestCategoryMinLength(t *testing.T) {
	t.Parallel()

	req := CreateBookRequest{
		Title:      "Learning Go",
		Excerpt:    "a practical introduction",
		UserID:     "507f1f77bcf86cd799439011",
		ISBN:       "978-93-5019-561-8",
		Category:   "fi",
		ReleasedAt: "2021-06-01",
	}

	fields := validateStruct(&req)
	require.NotNil(t, fields)
	assert.Equal(t, "must be at least 3 characters long", fields["category"])
}

func TestParseReleaseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr string
	}{
		{
			name:  "plain date before cutoff",
			value: "2021-12-31",
			want:  time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "cutoff date itself",
			value: "2022-01-01",
			want:  time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 timestamp",
			value: "2021-05-01T00:00:00Z",
			want:  time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "after cutoff",
			value:   "2022-06-01",
			wantErr: "must not be after 2022-01-01",
		},
		{
			name:    "wrong layout",
			value:   "31-12-2021",
			wantErr: "must be a valid date (YYYY-MM-DD)",
		},
		{
			name:    "empty",
			value:   "",
			wantErr: "must be a valid date (YYYY-MM-DD)",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseReleaseDate(tc.value)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got))
		})
	}
}

func TestParseBookListFilter(t *testing.T) {
	t.Parallel()

	t.Run("unrecognized key", func(t *testing.T) {
		t.Parallel()

		_, fields := parseBookListFilter(url.Values{"author": {"doe"}})
		require.NotNil(t, fields)
		assert.Equal(t, "is not a recognized filter", fields["author"])
	})

	t.Run("short category", func(t *testing.T) {
		t.Parallel()

		_, fields := parseBookListFilter(url.Values{"category": {"fi"}})
		require.NotNil(t, fields)
		assert.Contains(t, fields, "category")
	})

	t.Run("malformed userId", func(t *testing.T) {
		t.Parallel()

		_, fields := parseBookListFilter(url.Values{"userId": {"not-hex"}})
		require.NotNil(t, fields)
		assert.Equal(t, "must be a valid 24 character hex id", fields["userId"])
	})

	t.Run("valid combination", func(t *testing.T) {
		t.Parallel()

		filter, fields := parseBookListFilter(url.Values{
			"userId":   {"507f1f77bcf86cd799439011"},
			"category": {"fiction"},
		})
		require.Nil(t, fields)
		assert.Equal(t, "507f1f77bcf86cd799439011", filter.UserID)
		assert.Equal(t, "fiction", filter.Category)
		assert.Empty(t, filter.Subcategory)
	})
}

func TestValidatePathID(t *testing.T) {
	t.Parallel()

	id, fields := validatePathID("bookId", "507f1f77bcf86cd799439011")
	require.Nil(t, fields)
	assert.Equal(t, "507f1f77bcf86cd799439011", id.Hex())

	_, fields = validatePathID("bookId", "short")
	require.NotNil(t, fields)
	assert.Equal(t, "must be a valid 24 character hex id", fields["bookId"])
}

func TestUpdateBookRequestRequiresAllFields(t *testing.T) {
	t.Parallel()

	req := UpdateBookRequest{
		Title:   "Learning Go",
		Excerpt: "a practical introduction",
	}

	fields := validateStruct(&req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "ISBN")
	assert.Contains(t, fields, "releasedAt")
}

func TestReviewRequestValidation(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name     string
		req      ReviewRequest
		badField string
	}{
		{name: "valid", req: ReviewRequest{ReviewedBy: strPtr("Jane"), Rating: 4, Review: strPtr("great read")}},
		{name: "optional fields omitted", req: ReviewRequest{Rating: 4}},
		{name: "rating missing", req: ReviewRequest{ReviewedBy: strPtr("Jane")}, badField: "rating"},
		{name: "rating too high", req: ReviewRequest{Rating: 6}, badField: "rating"},
		{name: "short reviewer", req: ReviewRequest{ReviewedBy: strPtr("Jo"), Rating: 3}, badField: "reviewedBy"},
		{name: "short text", req: ReviewRequest{Rating: 3, Review: strPtr("meh")}, badField: "review"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fields := validateStruct(&tc.req)
			if tc.badField == "" {
				assert.Nil(t, fields)
			} else {
				require.NotNil(t, fields)
				assert.Contains(t, fields, tc.badField)
			}
		})
	}
}
