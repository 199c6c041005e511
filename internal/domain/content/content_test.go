package content

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCodesForTab(t *testing.T) {
	Convey("Given the code categories", t, func() {
		Convey("When asking for each known tab", func() {
			Convey("Then the sample counts should match the category", func() {
				So(CodesForTab(CategoryPython), ShouldHaveLength, 3)
				So(CodesForTab(CategoryOvito), ShouldHaveLength, 2)
				So(CodesForTab(CategoryFortran), ShouldHaveLength, 2)
				So(CodesForTab(CategoryCPP), ShouldHaveLength, 2)
				So(CodesForTab(CategoryCPP)[0].Title, ShouldEqual, "MLIP_Trainer.cpp")
			})
		})

		Convey("When asking for an unknown tab", func() {
			codes := CodesForTab("rust")

			Convey("Then python samples should be returned", func() {
				So(codes, ShouldResemble, CodesForTab(CategoryPython))
			})
		})

		Convey("When the returned slice is modified", func() {
			codes := CodesForTab(CategoryPython)
			codes[0].Title = "changed"

			Convey("Then later calls should be unaffected", func() {
				So(CodesForTab(CategoryPython)[0].Title, ShouldEqual, "ADF_analysis1.py")
			})
		})
	})
}

func TestCategory(t *testing.T) {
	Convey("Given category lookups", t, func() {
		Convey("When the id exists", func() {
			c, ok := Category(CategoryCPP)

			Convey("Then the descriptor should be returned", func() {
				So(ok, ShouldBeTrue)
				So(c.Name, ShouldEqual, "C++")
			})
		})

		Convey("When the id is unknown", func() {
			_, ok := Category("")

			Convey("Then ok should be false", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When listing categories", func() {
			Convey("Then every category should resolve and the default should be first", func() {
				cats := Categories()
				So(cats[0].ID, ShouldEqual, DefaultCategory)
				for _, c := range cats {
					_, ok := Category(c.ID)
					So(ok, ShouldBeTrue)
				}
			})
		})
	})
}

func TestProfile(t *testing.T) {
	Convey("Given the portfolio", t, func() {
		p := Profile()

		Convey("Then every section should be populated", func() {
			So(p.Hero.Name, ShouldEqual, "Dr. Sergey Galitskiy")
			So(p.About.Highlights, ShouldHaveLength, 4)
			So(p.Experience, ShouldHaveLength, 4)
			So(p.Education, ShouldHaveLength, 3)
			So(p.Publications, ShouldHaveLength, 8)
			So(p.ResearchInterests, ShouldHaveLength, 10)
			So(p.WorkSamples.Movies, ShouldHaveLength, 3)
			So(p.WorkSamples.MDAnalysis, ShouldHaveLength, 3)
			So(p.CodeCategories, ShouldHaveLength, 4)
			So(p.Contact.Social, ShouldHaveLength, 3)
			So(p.Footer.QuickLinks, ShouldHaveLength, 4)
		})

		Convey("Then documents should point at the served files", func() {
			So(p.About.Documents[0].URL, ShouldEqual, CVPath)
			So(p.Footer.Documents[1].URL, ShouldEqual, ResumePath)
		})

		Convey("Then publication images should prefer the cover", func() {
			jap := p.Publications[1]
			So(jap.Image(), ShouldEqual, "/images/jap_2018_cover.jpg")
			So(jap.ImageAlt(), ShouldEqual, "Cover of Journal of Applied Physics 2018")
			li := p.Publications[0]
			So(li.Image(), ShouldEqual, "/images/li_clusters_2015.jpg")
			So(li.ImageAlt(), ShouldStartWith, "Illustration from Hartree-Fock")
		})
	})
}

func TestResearchStats(t *testing.T) {
	Convey("Given live counts", t, func() {
		stats := ResearchStats(255, 8, 18)

		Convey("Then they should be formatted beside the static i10-index", func() {
			So(stats, ShouldResemble, []Stat{
				{Label: "Total Publications", Value: "18+"},
				{Label: "Citations", Value: "255"},
				{Label: "H-Index", Value: "8"},
				{Label: "i10-Index", Value: "8"},
			})
		})
	})
}
