package cmd

import (
	"bytes"
	"strings"
	"testing"

	"acconsole/pkg/sdk"

	"github.com/stretchr/testify/require"
)

const packageYAML = `
name: "&6停服补偿"
description: 感谢耐心等待
items:
  - material: diamond
    amount: 3
    customName: "&b钻石"
    lore:
      - 第一行
      - 第二行
  - material: golden_apple
`

func TestDecodeCompensation(t *testing.T) {
	form, err := decodeCompensation(strings.NewReader(packageYAML))
	require.NoError(t, err)
	require.False(t, form.Editing())

	req, err := form.Request()
	require.NoError(t, err)
	require.Equal(t, "&6停服补偿", req.Name)
	require.Equal(t, []sdk.Item{
		{Material: "DIAMOND", Amount: 3, CustomName: "&b钻石", Lore: []string{"第一行", "第二行"}},
		{Material: "GOLDEN_APPLE", Amount: 1, Lore: []string{}},
	}, req.Items)
}

func TestDecodeCompensationWithoutItems(t *testing.T) {
	form, err := decodeCompensation(strings.NewReader("name: 空包\n"))
	require.NoError(t, err)
	_, err = form.Request()
	require.Error(t, err)
}

func TestDecodeCompensationRejectsBadYAML(t *testing.T) {
	_, err := decodeCompensation(strings.NewReader("items: [\n"))
	require.ErrorContains(t, err, "decode package")
}

func TestExportThenDecode(t *testing.T) {
	var buf bytes.Buffer
	err := encodeCompensation(&buf, sdk.Compensation{
		ID:         "4",
		Name:       "周末礼包",
		CreateTime: "2024-01-01 10:00",
		Items:      []sdk.Item{{Material: "EMERALD", Amount: 16, Lore: []string{}}},
	})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "createTime")

	form, err := decodeCompensation(&buf)
	require.NoError(t, err)
	require.True(t, form.Editing())
	req, err := form.Request()
	require.NoError(t, err)
	require.Equal(t, "4", req.ID)
	require.Equal(t, 16, req.Items[0].Amount)
}
