package postgres

import (
	"context"
	"fmt"
	"reflect"

	"github.com/xy-planning-network/enumlist"
	"gorm.io/gorm/schema"
)

var _ schema.SerializerInterface = Serializer{}

// A Serializer stores a model field through an [enumlist.Column].
//
// Register one with RegisterColumn and opt a field into it with a struct tag:
//
//	type Song struct {
//		Genres []Genre `gorm:"serializer:genres"`
//	}
//
// The field may be the type the Column produces or a pointer to it.
type Serializer struct {
	Column enumlist.Column
}

// RegisterColumn registers col as the GORM serializer called name.
// Registering a name again replaces the earlier Column.
func RegisterColumn(name string, col enumlist.Column) {
	schema.RegisterSerializer(name, Serializer{Column: col})
}

// Scan decodes dbValue and assigns it to the field on dst.
//
// Scan implements gorm.io/gorm/schema.SerializerInterface.
func (s Serializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue any) error {
	v, err := s.Column.Result(dbValue)
	if err != nil {
		return fmt.Errorf("failed reading column %s: %w", field.DBName, err)
	}

	fv, err := assignable(reflect.ValueOf(v), field)
	if err != nil {
		return err
	}

	field.ReflectValueOf(ctx, dst).Set(fv)
	return nil
}

// Value encodes fieldValue for storage.
//
// Value implements gorm.io/gorm/schema.SerializerValuerInterface.
func (s Serializer) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue any) (any, error) {
	v, err := s.Column.Bind(fieldValue)
	if err != nil {
		return nil, fmt.Errorf("failed binding column %s: %w", field.DBName, err)
	}

	return v, nil
}

// assignable fits v to the type of field,
// taking its address when field is a pointer and leaving the pointer nil for NULL.
func assignable(v reflect.Value, field *schema.Field) (reflect.Value, error) {
	ft := field.FieldType
	if !v.IsValid() {
		return reflect.Zero(ft), nil
	}

	if v.Type().AssignableTo(ft) {
		return v, nil
	}

	if ft.Kind() == reflect.Pointer && v.Type().AssignableTo(ft.Elem()) {
		switch v.Kind() {
		case reflect.Slice, reflect.Map:
			if v.IsNil() {
				return reflect.Zero(ft), nil
			}
		}

		p := reflect.New(ft.Elem())
		p.Elem().Set(v)
		return p, nil
	}

	return reflect.Value{}, fmt.Errorf(
		"%w: cannot assign %s to field %s of type %s",
		enumlist.ErrNotValid, v.Type(), field.Name, ft,
	)
}
