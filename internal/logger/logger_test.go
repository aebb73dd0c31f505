package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("tags user and tenant", func(t *testing.T) {
		ctx := WithPrincipal(context.Background(), "ada@example.com", "forge-academy")

		l := WithContext(ctx)
		assert.Equal(t, "ada@example.com", l.Data["user"])
		assert.Equal(t, "forge-academy", l.Data["tenant"])
	})

	t.Run("unknown user", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "unknown", l.Data["user"])
		_, hasTenant := l.Data["tenant"]
		assert.False(t, hasTenant)
	})
}

func TestWithFields(t *testing.T) {
	l := New().WithField("op", "clock_in").WithFields(map[string]interface{}{"user_id": "u1"})
	assert.Equal(t, "clock_in", l.Data["op"])
	assert.Equal(t, "u1", l.Data["user_id"])
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
