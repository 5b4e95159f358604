package config

// Prompt text sent as developer messages
const (
	// DeveloperPrompt is the default developer message of every conversation
	DeveloperPrompt = `Please take your time when answering. You are helpful, intelligent, and friendly.
You are also very concise and accurate.
No words are wasted in your responses.
When what is being asked is ambiguous, please ask clarifying questions before answering.
Always answer with very accurate and kind responses that are short, to the point and friendly.`

	// DocumentPrompt turns a conversation into a markdown report
	DocumentPrompt = `Please take your time when answering. Your job is to look at the following conversation
and create a well-formed document about the topics in the conversation. Do not talk about the
people in the conversations, or that it is a conversation. Extract the meaning and data of
the conversation and put it into a well-formed report, do not omit any part of the
conversation. If there is code, please put it in the report.
Make sure the report is written in markdown. Make sure to look at all messages.`

	// TitlePrompt asks for a one-line title; the report follows after "::"
	TitlePrompt = `You are an assistant that creates concise titles for reports. Based on the following report content, provide a one-line title that summarizes the content. Do not include any additional text.`

	ReadmePrompt = "Please take your time when answering. Generate a comprehensive README.md for this project. The README should include the following elements:\n" +
		"\n" +
		"1. **Project Title and Description**: Provide a concise overview of the project, its objectives, and key features.\n" +
		"\n" +
		"2. **Installation Instructions**: Outline the steps required to install and set up the project, including any necessary dependencies or configurations.\n" +
		"\n" +
		"3. **Usage Guide**: Explain how to use the project, highlighting important commands, workflows, or features.\n" +
		"\n" +
		"4. **File and Structure Overview**: Summarize important files and folders in the project and their purposes (e.g., source files, configuration files, scripts).\n" +
		"\n" +
		"5. **Configuration Details**: Include key settings or configurations that users need to be aware of, especially from files like `.toml`, `.json`, `.yaml`, and `.csproj`.\n" +
		"\n" +
		"6. **Contribution Guidelines**: Briefly mention how others can contribute to the project, linking to `CONTRIBUTING.md` if available.\n" +
		"\n" +
		"7. **License Information**: State the licensing terms of the project, referring to the `LICENSE` file if present.\n" +
		"\n" +
		"Ensure the README is clear, logically organized, and easy to follow. Use the extracted content from key project files to enrich the descriptions and instructions."
)

// TitleRequest builds the developer message for the report title request
func TitleRequest(report string) string {
	return TitlePrompt + " \n::\n " + report
}
