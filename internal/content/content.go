package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sundrymarket/storefront/pkg/enums"
	pkgerrors "github.com/sundrymarket/storefront/pkg/errors"
)

// Block is a static storefront content tile, such as the benefits strip on
// the landing page.
type Block struct {
	Title string        `json:"title"`
	Body  string        `json:"body"`
	Icon  enums.IconKey `json:"icon"`
}

// DefaultBlocks are served when no content file is configured.
var DefaultBlocks = []Block{
	{Title: "Fast delivery", Body: "Orders ship within two business days.", Icon: enums.IconKeyDelivery},
	{Title: "Easy returns", Body: "Thirty days to change your mind.", Icon: enums.IconKeyReturns},
	{Title: "Quality guarantee", Body: "Every product is inspected before it ships.", Icon: enums.IconKeyQuality},
	{Title: "Secure checkout", Body: "Payments are encrypted end to end.", Icon: enums.IconKeySecure},
}

// Service serves storefront content blocks.
type Service interface {
	Blocks(ctx context.Context) []Block
}

type service struct {
	blocks []Block
}

// NewService loads blocks from path, or falls back to DefaultBlocks when
// path is empty. A file referencing an unknown icon key fails the load.
func NewService(path string) (Service, error) {
	if path == "" {
		return &service{blocks: DefaultBlocks}, nil
	}

	blocks, err := loadBlocks(path)
	if err != nil {
		return nil, err
	}
	return &service{blocks: blocks}, nil
}

func loadBlocks(path string) ([]Block, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read content blocks file")
	}

	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "parse content blocks file")
	}

	for i, block := range blocks {
		if block.Title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("content block %d is missing a title", i))
		}
		if !block.Icon.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("content block %d references unknown icon %q", i, string(block.Icon)))
		}
	}
	return blocks, nil
}

func (s *service) Blocks(_ context.Context) []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}
