package config

// defaultAttributions lists the icon and photo credits shown in the page footer.
func defaultAttributions() []string {
	return []string{
		`Icons made by <a href="https://www.flaticon.com/authors/good-ware"title="Good Ware">Good Ware</a> from <a href="https://www.flaticon.com"title="Flaticon">www.flaticon.com</a>`,
		`Icons made by <a href="https://www.flaticon.com/authors/iconixar"title="iconixar">iconixar</a> from <a href="https://www.flaticon.com"title="Flaticon">www.flaticon.com</a>`,
		`Icons made by <a href="https://www.freepik.com" title="Freepik">Freepik</a> from <a href="https://www.flaticon.com" title="Flaticon">www.flaticon.com</a>`,
		`Icons made by <a href="" title="Nhor Phai">Nhor Phai</a> from <a href="https://www.flaticon.com/" title="Flaticon">www.flaticon.com</a>`,
		`Photo by <a href="https://unsplash.com/@fitmasu?utm_source=unsplash&utm_medium=referral&utm_content=creditCopyText">Fitsum Admasu</a> on <a href="https://unsplash.com/images/things/health?utm_source=unsplash&utm_medium=referral&utm_content=creditCopyText">Unsplash</a>`,
		`Photo by <a href="https://unsplash.com/@hannaeberh?utm_source=unsplash&utm_medium=referral&utm_content=creditCopyText">Hanna Eberhard</a> on <a href="https://unsplash.com/images/things/health?utm_source=unsplash&utm_medium=referral&utm_content=creditCopyText">Unsplash</a>`,
		`Photo by <a href="https://unsplash.com/@esdesignisms?utm_source=unsplash&utm_medium=referral&utm_content=creditCopyText">Emma Simpson</a> on <a href="https://unsplash.com/s/photos/running-runner-morning?utm_source=unsplash&utm_medium=referral&utm_content=creditCopyText">Unsplash</a>`,
	}
}
