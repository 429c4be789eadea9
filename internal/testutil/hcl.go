package testutil

// ConfigHCL mirrors the built-in schema and registers two word classes.
const ConfigHCL = `
namespace "meta" {
  kind    = singular
  subkeys = ["gol"]
}

namespace "lang" {
  kind = repeatable
  open = true
}

word_class "NAMA" {
  name        = "kata nama"
  description = "Kata yang merujuk kepada benda, orang atau tempat"
}

word_class "KK" {
  name = "kata kerja"
}
`
