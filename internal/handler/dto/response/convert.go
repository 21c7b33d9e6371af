package response

import (
	"daycare-waitlist/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				id, ok := src.(uuid.UUID)
				if !ok {
					return nil, errs.New("expected uuid.UUID")
				}
				return id.String(), nil
			},
		},
	},
}

// convert copies a read model into its response shape, field by field name.
func convert[T any](from any) (T, error) {
	var to T
	if err := copier.CopyWithOption(&to, from, copyOption); err != nil {
		return to, errs.Wrap(err, "copy response")
	}
	return to, nil
}

func convertAll[T, V any](from []V) ([]T, error) {
	out := make([]T, 0, len(from))
	for i := range from {
		item, err := convert[T](&from[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
