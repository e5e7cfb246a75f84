// Command pakctl inspects and extracts PopCap Pak archives.
package main

func main() {
	execute()
}
