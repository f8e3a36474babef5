package postgres_test

import (
	"errors"

	"github.com/xy-planning-network/enumlist"
)

func (suite *DBTestSuite) TestCreateFirst() {
	favs := []Color{Blue, Blue}
	p := Palette{
		Name:      "sunset",
		Colors:    []Color{Red, Green},
		Favorites: &favs,
		Accents:   enumlist.NewSet(Blue, Red),
	}
	suite.Require().Nil(suite.db.Create(&p))
	suite.Require().NotZero(p.ID)

	var stored struct {
		Colors    *string
		Favorites *string
		Accents   *string
	}
	err := suite.db.DB().Raw("SELECT colors, favorites, accents FROM palettes WHERE id = ?", p.ID).Scan(&stored).Error
	suite.Require().Nil(err)
	suite.Require().Equal("red,green", *stored.Colors)
	suite.Require().Equal("blue,blue", *stored.Favorites)
	suite.Require().Equal("red|blue", *stored.Accents)

	var got Palette
	suite.Require().Nil(suite.db.Where("id = ?", p.ID).First(&got))
	suite.Require().Equal(p, got)
}

func (suite *DBTestSuite) TestCreateFirst_NullAndEmpty() {
	p := Palette{Name: "blank", Colors: []Color{}, Accents: nil}
	suite.Require().Nil(suite.db.Create(&p))

	var stored struct {
		Colors  *string
		Accents *string
	}
	err := suite.db.DB().Raw("SELECT colors, accents FROM palettes WHERE id = ?", p.ID).Scan(&stored).Error
	suite.Require().Nil(err)
	suite.Require().NotNil(stored.Colors)
	suite.Require().Equal("", *stored.Colors)
	suite.Require().Nil(stored.Accents)

	var got Palette
	suite.Require().Nil(suite.db.Where("id = ?", p.ID).First(&got))
	suite.Require().NotNil(got.Colors)
	suite.Require().Empty(got.Colors)
	suite.Require().Nil(got.Favorites)
	suite.Require().Nil(got.Accents)
}

func (suite *DBTestSuite) TestCreate_ForeignMember() {
	err := suite.db.Create(&Palette{Name: "bad", Colors: []Color{Red, "purple"}})
	suite.Require().ErrorIs(err, enumlist.ErrNotValid)

	var valErr *enumlist.ValidationError
	suite.Require().True(errors.As(err, &valErr))

	count, err := suite.db.Model(&Palette{}).Count()
	suite.Require().Nil(err)
	suite.Require().Zero(count)
}

func (suite *DBTestSuite) TestCreate_Exists() {
	suite.Require().Nil(suite.db.Create(&Palette{Name: "twice"}))
	suite.Require().ErrorIs(suite.db.Create(&Palette{Name: "twice"}), enumlist.ErrExists)
}

func (suite *DBTestSuite) TestFirst_CorruptText() {
	p := Palette{Name: "corrupt", Colors: []Color{Red}}
	suite.Require().Nil(suite.db.Create(&p))
	suite.Require().Nil(suite.db.Exec("UPDATE palettes SET colors = ? WHERE id = ?", "red,mauve", p.ID))

	var got Palette
	err := suite.db.Where("id = ?", p.ID).First(&got)
	suite.Require().ErrorIs(err, enumlist.ErrNotExist)

	var decErr *enumlist.DecodeError
	suite.Require().True(errors.As(err, &decErr))
	suite.Require().Equal("mauve", decErr.Token)
}

func (suite *DBTestSuite) TestFind() {
	suite.Require().ErrorIs(suite.db.Find(&[]Palette{}), enumlist.ErrNotFound)

	suite.Require().Nil(suite.db.Create(&Palette{Name: "a", Colors: []Color{Blue}}))
	suite.Require().Nil(suite.db.Create(&Palette{Name: "b", Accents: enumlist.NewSet(Green)}))

	var got []Palette
	suite.Require().Nil(suite.db.Order("name").Find(&got))
	suite.Require().Len(got, 2)
	suite.Require().Equal([]Color{Blue}, got[0].Colors)
	suite.Require().Nil(got[0].Accents)
	suite.Require().Nil(got[1].Colors)
	suite.Require().Equal(enumlist.NewSet(Green), got[1].Accents)
}

func (suite *DBTestSuite) TestDelete() {
	p := Palette{Name: "gone"}
	suite.Require().Nil(suite.db.Create(&p))
	suite.Require().Nil(suite.db.Delete(&p))
	suite.Require().ErrorIs(suite.db.Delete(&p), enumlist.ErrNotFound)
}

func (suite *DBTestSuite) TestLimit_Negative() {
	suite.Require().ErrorIs(suite.db.Limit(-1).Find(&[]Palette{}), enumlist.ErrNotValid)
}
