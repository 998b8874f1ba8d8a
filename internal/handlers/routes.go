package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes groups the REST handlers served under /api/v1
type Routes struct {
	Members     *MemberHandler
	Couples     *CoupleHandler
	Missions    *MissionHandler
	Emotions    *EmotionHandler
	Interests   *InterestHandler
	Infertility *InfertilityHandler
	Counsels    *CounselHandler
	Exports     *ExportHandler
}

// Mount registers the routes on r. Everything except signup and login runs behind auth.
func (rt Routes) Mount(r chi.Router, auth func(http.Handler) http.Handler) {
	// Public routes
	r.Post("/members/signup", rt.Members.Signup)
	r.Post("/members/login", rt.Members.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Put("/members/push-token", rt.Members.UpdatePushToken)

		r.Post("/couples", rt.Couples.Register)
		r.Get("/couples", rt.Couples.GetSpouse)

		r.Get("/missions/weekly", rt.Missions.Weekly)

		r.Get("/emotions", rt.Emotions.Latest)
		r.Post("/emotions", rt.Emotions.Create)
		r.Get("/emotions/{id}", rt.Emotions.Get)
		r.Put("/emotions/{id}", rt.Emotions.Update)

		r.Get("/interests", rt.Interests.List)
		r.Post("/interests", rt.Interests.Create)

		r.Get("/infertility-tests", rt.Infertility.List)
		r.Post("/infertility-tests", rt.Infertility.Create)
		r.Get("/infertility-tests/{id}", rt.Infertility.Detail)

		r.Get("/counsels", rt.Counsels.List)
		r.Post("/counsels", rt.Counsels.Create)
		r.Get("/counsels/{id}", rt.Counsels.Get)

		r.Post("/exports", rt.Exports.Export)
	})
}
